package scanner

import (
	"context"
	"time"

	"TailSentinel/internal/collector"
	"TailSentinel/internal/model"
	"TailSentinel/internal/strategy"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the number of tickers scanned concurrently.
const DefaultWorkers = 4

// Failure stages recorded in a report.
const (
	StageDaily  = "daily"
	StageWeekly = "weekly"
)

// Runner scans a universe of tickers for tail patterns.
type Runner struct {
	Collector  *collector.Collector
	Symbols    []string
	Thresholds strategy.Thresholds
	Workers    int
}

// NewRunner creates a Runner with the default worker count.
func NewRunner(col *collector.Collector, symbols []string, th strategy.Thresholds) *Runner {
	return &Runner{Collector: col, Symbols: symbols, Thresholds: th, Workers: DefaultWorkers}
}

type tickerResult struct {
	signals  []model.Signal
	skipped  bool
	failures []model.TickerFailure
}

// Run scans every symbol and returns the merged report. A failure on one
// ticker is recorded and never aborts the run.
func (r *Runner) Run(ctx context.Context, asOf time.Time) *model.ScanReport {
	report := &model.ScanReport{
		RunID:     uuid.NewString(),
		AsOf:      asOf,
		StartedAt: time.Now(),
		Tickers:   len(r.Symbols),
	}
	logger := log.With().Str("component", "scanner").Str("run_id", report.RunID).Logger()
	logger.Info().Int("tickers", len(r.Symbols)).Msg("scan started")

	workers := r.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	results := make([]tickerResult, len(r.Symbols))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, symbol := range r.Symbols {
		g.Go(func() error {
			results[i] = r.scanTicker(ctx, symbol, asOf)
			return nil
		})
	}
	_ = g.Wait()

	for i, res := range results {
		if res.skipped {
			report.Skipped = append(report.Skipped, r.Symbols[i])
		}
		report.Failures = append(report.Failures, res.failures...)
		report.Signals = append(report.Signals, res.signals...)
	}
	report.FinishedAt = time.Now()

	logger.Info().
		Int("signals", len(report.Signals)).
		Int("skipped", len(report.Skipped)).
		Int("failed", len(report.Failures)).
		Dur("elapsed", report.FinishedAt.Sub(report.StartedAt)).
		Msg("scan finished")
	return report
}

func (r *Runner) scanTicker(ctx context.Context, symbol string, asOf time.Time) tickerResult {
	var res tickerResult
	if err := ctx.Err(); err != nil {
		res.failures = append(res.failures, failure(symbol, StageDaily, err))
		return res
	}

	daily, err := r.Collector.CollectDaily(ctx, symbol)
	if err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Msg("daily data unavailable")
		res.failures = append(res.failures, failure(symbol, StageDaily, err))
		return res
	}
	if len(daily.Bars) < r.Thresholds.LookbackDays+1 {
		log.Debug().Str("symbol", symbol).Int("bars", len(daily.Bars)).Msg("not enough daily data, skipping")
		res.skipped = true
		return res
	}
	res.signals = append(res.signals, strategy.ScanSeries(daily, strategy.DailyProfile, r.Thresholds, asOf)...)

	weekly, err := r.Collector.CollectWeekly(ctx, symbol)
	if err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Msg("weekly data unavailable")
		res.failures = append(res.failures, failure(symbol, StageWeekly, err))
		return res
	}
	res.signals = append(res.signals, strategy.ScanSeries(weekly, strategy.WeeklyProfile, r.Thresholds, asOf)...)
	return res
}

func failure(symbol, stage string, err error) model.TickerFailure {
	return model.TickerFailure{Symbol: symbol, Stage: stage, Error: err.Error()}
}
