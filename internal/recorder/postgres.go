package recorder

import (
	"context"
	"fmt"
	"time"

	"TailSentinel/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// PoolConfig tunes the Postgres connection pool.
type PoolConfig struct {
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// DefaultPoolConfig suits a single scanner process.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxConns:          4,
		MinConns:          1,
		MaxConnLifetime:   30 * time.Minute,
		MaxConnIdleTime:   5 * time.Minute,
		HealthCheckPeriod: 30 * time.Second,
	}
}

// PostgresRecorder persists run telemetry to Postgres.
type PostgresRecorder struct {
	pool *pgxpool.Pool
}

// NewPostgresRecorder connects to databaseURL and creates the tables.
func NewPostgresRecorder(ctx context.Context, databaseURL string, cfg PoolConfig) (*PostgresRecorder, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolCfg.HealthCheckPeriod = cfg.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	r := &PostgresRecorder{pool: pool}
	if err := r.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info().Msg("postgres recorder opened")
	return r, nil
}

func (r *PostgresRecorder) migrate(ctx context.Context) error {
	stmts := []string{
		`create table if not exists scan_runs (
			run_id text primary key,
			as_of timestamptz not null,
			started_at timestamptz not null,
			finished_at timestamptz not null,
			tickers int not null default 0,
			skipped int not null default 0,
			failed int not null default 0,
			daily_bottoming int not null default 0,
			daily_topping int not null default 0,
			weekly_bottoming int not null default 0,
			weekly_topping int not null default 0
		);`,
		`create index if not exists idx_runs_started on scan_runs(started_at);`,
		`create table if not exists scan_failures (
			id bigserial primary key,
			run_id text not null references scan_runs(run_id) on delete cascade,
			symbol text not null,
			stage text not null default '',
			error text not null default ''
		);`,
		`create index if not exists idx_failures_run on scan_failures(run_id);`,
	}
	for _, s := range stmts {
		if _, err := r.pool.Exec(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRecorder) RecordRun(ctx context.Context, rep *model.ScanReport) error {
	row := NewRunRow(rep)
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		insert into scan_runs(
			run_id, as_of, started_at, finished_at, tickers, skipped, failed,
			daily_bottoming, daily_topping, weekly_bottoming, weekly_topping
		) values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		row.RunID, rep.AsOf, rep.StartedAt, rep.FinishedAt, row.Tickers, row.Skipped, row.Failed,
		row.DailyBottoming, row.DailyTopping, row.WeeklyBottoming, row.WeeklyTopping,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	for _, f := range rep.Failures {
		if _, err := tx.Exec(ctx,
			`insert into scan_failures(run_id, symbol, stage, error) values ($1,$2,$3,$4)`,
			row.RunID, f.Symbol, f.Stage, f.Error,
		); err != nil {
			return fmt.Errorf("insert failure: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func (r *PostgresRecorder) Close() error {
	log.Info().Msg("closing postgres recorder")
	r.pool.Close()
	return nil
}
