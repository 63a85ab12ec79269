package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"TailSentinel/internal/model"

	"github.com/rs/zerolog/log"
)

// RESTFetcher implements Fetcher against a self-hosted bar service.
type RESTFetcher struct {
	BaseURL string
	APIKey  string
	Client  *Client
}

// NewRESTFetcher creates a fetcher for the bar service at baseURL.
func NewRESTFetcher(baseURL, apiKey string, client *Client) *RESTFetcher {
	return &RESTFetcher{BaseURL: baseURL, APIKey: apiKey, Client: client}
}

func (f *RESTFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape from the bar service.
type restBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

func (f *RESTFetcher) FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.OHLCV, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?symbol=%s&limit=%d", f.BaseURL, url.QueryEscape(symbol), days)
	return f.fetchBars(ctx, endpoint)
}

func (f *RESTFetcher) FetchWeeklyBars(ctx context.Context, symbol string, weeks int) ([]model.OHLCV, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars/weekly?symbol=%s&limit=%d", f.BaseURL, url.QueryEscape(symbol), weeks)
	bars, err := f.fetchBars(ctx, endpoint)
	if err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Msg("weekly endpoint failed, aggregating daily bars")
		dailyBars, dailyErr := f.FetchDailyBars(ctx, symbol, weeks*7)
		if dailyErr != nil {
			return nil, fmt.Errorf("weekly fetch failed: %w; daily fallback also failed: %w", err, dailyErr)
		}
		return AggregateWeekly(dailyBars), nil
	}
	return bars, nil
}

func (f *RESTFetcher) fetchBars(ctx context.Context, endpoint string) ([]model.OHLCV, error) {
	header := http.Header{}
	if f.APIKey != "" {
		header.Set("Authorization", "Bearer "+f.APIKey)
	}
	body, err := f.Client.Get(ctx, endpoint, header)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	var rb []restBar
	if err := json.Unmarshal(body, &rb); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}
	bars := make([]model.OHLCV, len(rb))
	for i, b := range rb {
		bars[i] = model.OHLCV{
			Time:   time.Unix(b.Timestamp, 0).UTC(),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

// AggregateWeekly folds daily bars into ISO-week bars stamped with the
// first trading day of each week.
func AggregateWeekly(daily []model.OHLCV) []model.OHLCV {
	if len(daily) == 0 {
		return nil
	}
	var weekly []model.OHLCV
	week := daily[0]
	wy, ww := week.Time.ISOWeek()

	for _, d := range daily[1:] {
		y, w := d.Time.ISOWeek()
		if y != wy || w != ww {
			weekly = append(weekly, week)
			week = d
			wy, ww = y, w
			continue
		}
		week.High = max(week.High, d.High)
		week.Low = min(week.Low, d.Low)
		week.Close = d.Close
		week.Volume += d.Volume
	}
	return append(weekly, week)
}
