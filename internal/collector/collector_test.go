package collector

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"TailSentinel/internal/model"
)

func ts(day int) time.Time {
	return time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)
}

func TestClean(t *testing.T) {
	bars := []model.OHLCV{
		{Time: ts(2), Open: 10, High: 11, Low: 9, Close: 10, Volume: 1},
		{Time: ts(0), Open: 10, High: 11, Low: 9, Close: 10, Volume: 1},
		{Time: ts(1), Open: 10, High: 11, Low: 9, Close: math.NaN(), Volume: 1},
		{Time: ts(3), Open: 10, High: 9, Low: 9.5, Close: 10, Volume: 1}, // inverted
		{Time: ts(2), Open: 12, High: 13, Low: 11, Close: 12, Volume: 2}, // duplicate, later wins
		{Time: ts(4), Open: 0, High: 11, Low: 9, Close: 10, Volume: 1},
	}
	got := Clean(bars)
	if len(got) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(got))
	}
	if !got[0].Time.Equal(ts(0)) || !got[1].Time.Equal(ts(2)) {
		t.Errorf("unexpected order: %v, %v", got[0].Time, got[1].Time)
	}
	if got[1].Open != 12 {
		t.Errorf("expected duplicate to keep last bar, got open %.0f", got[1].Open)
	}
}

func TestAggregateWeekly(t *testing.T) {
	// Monday 2024-03-04 .. Tuesday 2024-03-12
	var daily []model.OHLCV
	for i := 0; i < 9; i++ {
		if d := ts(i).Weekday(); d == time.Saturday || d == time.Sunday {
			continue
		}
		p := float64(100 + i)
		daily = append(daily, model.OHLCV{Time: ts(i), Open: p, High: p + 1, Low: p - 1, Close: p + 0.5, Volume: 10})
	}
	weekly := AggregateWeekly(daily)
	if len(weekly) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(weekly))
	}
	w := weekly[0]
	if w.Open != 100 || w.High != 105 || w.Low != 99 || w.Close != 104.5 || w.Volume != 50 {
		t.Errorf("unexpected first week: %+v", w)
	}
	if !weekly[1].Time.Equal(ts(7)) {
		t.Errorf("expected second week stamped %s, got %s", ts(7), weekly[1].Time)
	}
}

const chartJSON = `{"chart":{"result":[{"timestamp":[1709510400,1709596800,1709683200],
"indicators":{"quote":[{"open":[10,11,null],"high":[12,13,14],"low":[9,10,11],"close":[11,12,13],"volume":[100,200,300]}],
"adjclose":[{"adjclose":[5.5,12,13]}]}}],"error":null}}`

func TestYahooFetcher_DailyBars(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery = r.URL.Path, r.URL.RawQuery
		w.Write([]byte(chartJSON))
	}))
	defer srv.Close()

	f := NewYahooFetcher(NewClient(ClientOptions{RequestsPerSec: 100}))
	f.BaseURL = srv.URL
	bars, err := f.FetchDailyBars(context.Background(), "BRK.B", 180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/v8/finance/chart/BRK-B" {
		t.Errorf("expected mapped symbol path, got %s", gotPath)
	}
	if !strings.Contains(gotQuery, "interval=1d") || !strings.Contains(gotQuery, "range=6mo") {
		t.Errorf("unexpected query %s", gotQuery)
	}
	if len(bars) != 2 {
		t.Fatalf("expected null row dropped, got %d bars", len(bars))
	}
	// adjclose 5.5 against close 11 halves the first bar
	if bars[0].Open != 5 || bars[0].High != 6 || bars[0].Low != 4.5 || bars[0].Close != 5.5 {
		t.Errorf("expected adjusted first bar, got %+v", bars[0])
	}
	if bars[1].Close != 12 {
		t.Errorf("expected unadjusted second bar, got %+v", bars[1])
	}
}

func TestYahooFetcher_NoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	}))
	defer srv.Close()

	f := NewYahooFetcher(NewClient(ClientOptions{RequestsPerSec: 100}))
	f.BaseURL = srv.URL
	_, err := f.FetchWeeklyBars(context.Background(), "ZZZZ", 52)
	if !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}

func TestClient_NotFoundIsNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(ClientOptions{RequestsPerSec: 100, MaxElapsedTime: 2 * time.Second})
	_, err := c.Get(context.Background(), srv.URL, nil)
	var serr *StatusError
	if !errors.As(err, &serr) || serr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 StatusError, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("expected 1 call, got %d", n)
	}
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(ClientOptions{RequestsPerSec: 100, MaxElapsedTime: 10 * time.Second})
	body, err := c.Get(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != "ok" {
		t.Errorf("expected body ok, got %q", body)
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Errorf("expected 3 calls, got %d", n)
	}
}

func TestRESTFetcher_WeeklyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("missing auth header")
		}
		switch r.URL.Path {
		case "/api/v1/bars/weekly":
			http.Error(w, "unsupported", http.StatusNotFound)
		case "/api/v1/bars/daily":
			w.Write([]byte(`[
				{"timestamp":1709596800,"open":11,"high":13,"low":10,"close":12,"volume":5},
				{"timestamp":1709510400,"open":10,"high":12,"low":9,"close":11,"volume":5}
			]`))
		}
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "key", NewClient(ClientOptions{RequestsPerSec: 100}))
	bars, err := f.FetchWeeklyBars(context.Background(), "AAPL", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 1 {
		t.Fatalf("expected 1 aggregated week, got %d", len(bars))
	}
	if bars[0].Open != 10 || bars[0].Close != 12 || bars[0].Volume != 10 {
		t.Errorf("unexpected aggregated bar %+v", bars[0])
	}
}

func TestCollector_CollectDaily(t *testing.T) {
	m := &MockFetcher{
		DailyData: map[string][]model.OHLCV{"AAPL": {
			{Time: ts(1), Open: 10, High: 11, Low: 9, Close: 10, Volume: 1},
			{Time: ts(0), Open: 10, High: 11, Low: 9, Close: 10, Volume: 1},
		}},
		Err: map[string]error{"BAD": errors.New("boom")},
	}
	c := NewCollector(m, 180, 52)
	daily, err := c.CollectDaily(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if daily.Granularity != model.Daily || len(daily.Bars) != 2 || !daily.Bars[0].Time.Equal(ts(0)) {
		t.Errorf("unexpected daily series %+v", daily)
	}
	weekly, err := c.CollectWeekly(context.Background(), "AAPL")
	if err != nil || weekly.Granularity != model.Weekly || len(weekly.Bars) != 0 {
		t.Errorf("unexpected weekly series %+v (err %v)", weekly, err)
	}
	if _, err := c.CollectDaily(context.Background(), "BAD"); err == nil {
		t.Error("expected error for failing symbol")
	}
}
