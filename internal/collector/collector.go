package collector

import (
	"context"
	"fmt"
	"math"
	"sort"

	"TailSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	DailyData  map[string][]model.OHLCV
	WeeklyData map[string][]model.OHLCV
	Err        map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, symbol string, _ int) ([]model.OHLCV, error) {
	if err := m.Err[symbol]; err != nil {
		return nil, err
	}
	return m.DailyData[symbol], nil
}

func (m *MockFetcher) FetchWeeklyBars(_ context.Context, symbol string, _ int) ([]model.OHLCV, error) {
	if err := m.Err[symbol]; err != nil {
		return nil, err
	}
	return m.WeeklyData[symbol], nil
}

// Collector fetches and cleans both granularities for a symbol.
type Collector struct {
	Fetcher     Fetcher
	DailyDays   int
	WeeklyWeeks int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, dailyDays, weeklyWeeks int) *Collector {
	return &Collector{Fetcher: fetcher, DailyDays: dailyDays, WeeklyWeeks: weeklyWeeks}
}

// CollectDaily fetches and cleans the daily series.
func (c *Collector) CollectDaily(ctx context.Context, symbol string) (model.Series, error) {
	bars, err := c.Fetcher.FetchDailyBars(ctx, symbol, c.DailyDays)
	if err != nil {
		return model.Series{}, fmt.Errorf("fetch daily bars: %w", err)
	}
	return model.Series{Symbol: symbol, Granularity: model.Daily, Bars: Clean(bars)}, nil
}

// CollectWeekly fetches and cleans the weekly series.
func (c *Collector) CollectWeekly(ctx context.Context, symbol string) (model.Series, error) {
	bars, err := c.Fetcher.FetchWeeklyBars(ctx, symbol, c.WeeklyWeeks)
	if err != nil {
		return model.Series{}, fmt.Errorf("fetch weekly bars: %w", err)
	}
	return model.Series{Symbol: symbol, Granularity: model.Weekly, Bars: Clean(bars)}, nil
}

// Clean drops malformed bars, sorts by time and keeps the last bar for
// any duplicated timestamp.
func Clean(bars []model.OHLCV) []model.OHLCV {
	out := make([]model.OHLCV, 0, len(bars))
	for _, b := range bars {
		if !valid(b) {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })

	dedup := out[:0]
	for _, b := range out {
		if n := len(dedup); n > 0 && dedup[n-1].Time.Equal(b.Time) {
			dedup[n-1] = b
			continue
		}
		dedup = append(dedup, b)
	}
	return dedup
}

func valid(b model.OHLCV) bool {
	for _, v := range []float64{b.Open, b.High, b.Low, b.Close, b.Volume} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 || b.Volume < 0 {
		return false
	}
	return b.Low <= min(b.Open, b.Close) && b.High >= max(b.Open, b.Close)
}
