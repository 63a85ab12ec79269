package collector

import (
	"context"

	"TailSentinel/internal/model"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.OHLCV, error)
	FetchWeeklyBars(ctx context.Context, symbol string, weeks int) ([]model.OHLCV, error)
	Name() string
}
