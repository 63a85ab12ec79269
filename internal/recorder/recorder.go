package recorder

import (
	"context"

	"TailSentinel/internal/model"
)

// Recorder persists per-run scan telemetry. Alert contents are not stored.
type Recorder interface {
	RecordRun(ctx context.Context, r *model.ScanReport) error
	Close() error
}

// RunRow is the flattened telemetry written for one scan.
type RunRow struct {
	RunID           string
	AsOf            int64
	StartedAt       int64
	FinishedAt      int64
	Tickers         int
	Skipped         int
	Failed          int
	DailyBottoming  int
	DailyTopping    int
	WeeklyBottoming int
	WeeklyTopping   int
}

// NewRunRow summarizes a report into a RunRow.
func NewRunRow(r *model.ScanReport) RunRow {
	return RunRow{
		RunID:           r.RunID,
		AsOf:            r.AsOf.Unix(),
		StartedAt:       r.StartedAt.Unix(),
		FinishedAt:      r.FinishedAt.Unix(),
		Tickers:         r.Tickers,
		Skipped:         len(r.Skipped),
		Failed:          len(r.Failures),
		DailyBottoming:  r.Count(model.BottomingTail, model.Daily),
		DailyTopping:    r.Count(model.ToppingTail, model.Daily),
		WeeklyBottoming: r.Count(model.BottomingTail, model.Weekly),
		WeeklyTopping:   r.Count(model.ToppingTail, model.Weekly),
	}
}
