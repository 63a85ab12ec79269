package recorder

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"TailSentinel/internal/model"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run telemetry to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets dashboards read while a scan writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_runs (
			run_id           TEXT PRIMARY KEY,
			as_of            INTEGER NOT NULL,
			started_at       INTEGER NOT NULL,
			finished_at      INTEGER NOT NULL,
			tickers          INTEGER,
			skipped          INTEGER,
			failed           INTEGER,
			daily_bottoming  INTEGER,
			daily_topping    INTEGER,
			weekly_bottoming INTEGER,
			weekly_topping   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started ON scan_runs(started_at)`,

		`CREATE TABLE IF NOT EXISTS scan_failures (
			id     INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			symbol TEXT NOT NULL,
			stage  TEXT,
			error  TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_failures_run ON scan_failures(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(ctx context.Context, rep *model.ScanReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := NewRunRow(rep)
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO scan_runs
		(run_id, as_of, started_at, finished_at, tickers, skipped, failed,
		 daily_bottoming, daily_topping, weekly_bottoming, weekly_topping)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		row.RunID, row.AsOf, row.StartedAt, row.FinishedAt, row.Tickers, row.Skipped, row.Failed,
		row.DailyBottoming, row.DailyTopping, row.WeeklyBottoming, row.WeeklyTopping,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	for _, f := range rep.Failures {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO scan_failures (run_id, symbol, stage, error) VALUES (?,?,?,?)`,
			row.RunID, f.Symbol, f.Stage, f.Error,
		); err != nil {
			return fmt.Errorf("insert failure: %w", err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
