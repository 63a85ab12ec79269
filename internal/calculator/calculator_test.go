package calculator

import (
	"math"
	"testing"
	"time"

	"TailSentinel/internal/model"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestRollingMean_HandComputed(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50, 60, 70}
	got, ok := RollingMean(values, 5)

	for i := 0; i < 4; i++ {
		if ok[i] {
			t.Errorf("index %d: expected undefined, got %.2f", i, got[i])
		}
	}
	want := map[int]float64{4: 30, 5: 40, 6: 50}
	for i, w := range want {
		if !ok[i] {
			t.Fatalf("index %d: expected defined value", i)
		}
		if !approx(got[i], w) {
			t.Errorf("index %d: expected %.2f, got %.6f", i, w, got[i])
		}
	}
}

func TestRollingMean_WeeklyWindow(t *testing.T) {
	got, ok := RollingMean([]float64{3, 6, 9, 12}, 3)
	if ok[0] || ok[1] {
		t.Fatal("expected first two entries undefined")
	}
	if !ok[2] || !approx(got[2], 6) {
		t.Errorf("index 2: expected 6, got %.6f", got[2])
	}
	if !ok[3] || !approx(got[3], 9) {
		t.Errorf("index 3: expected 9, got %.6f", got[3])
	}
}

func TestRollingMean_ShortInput(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		window int
	}{
		{"empty", nil, 5},
		{"shorter than window", []float64{1, 2, 3}, 5},
		{"zero window", []float64{1, 2, 3}, 0},
	}
	for _, tt := range tests {
		_, ok := RollingMean(tt.values, tt.window)
		for i, v := range ok {
			if v {
				t.Errorf("%s: index %d should be undefined", tt.name, i)
			}
		}
	}
}

func TestRSISeries_UndefinedPrefixAndBounds(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + 5*math.Sin(float64(i)/3)
	}
	rsi, ok := RSISeries(closes, DefaultRSIPeriod)
	for i := 0; i < DefaultRSIPeriod; i++ {
		if ok[i] {
			t.Errorf("index %d: expected undefined momentum", i)
		}
	}
	for i := DefaultRSIPeriod; i < len(closes); i++ {
		if !ok[i] {
			t.Fatalf("index %d: expected defined momentum", i)
		}
		if rsi[i] < 0 || rsi[i] > 100 {
			t.Errorf("index %d: rsi %.2f out of [0,100]", i, rsi[i])
		}
	}
}

func TestRSISeries_RisingSeries(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = float64(100 + i)
	}
	rsi, ok := RSISeries(closes, DefaultRSIPeriod)
	if !ok[19] {
		t.Fatal("expected last value defined")
	}
	if !approx(rsi[19], 100) {
		t.Errorf("expected RSI 100 for monotonic rise, got %.4f", rsi[19])
	}
}

func TestRSISeries_TooShort(t *testing.T) {
	_, ok := RSISeries(make([]float64, DefaultRSIPeriod), DefaultRSIPeriod)
	for i, v := range ok {
		if v {
			t.Errorf("index %d: expected undefined for short series", i)
		}
	}
}

func bar(day int, o, h, l, c, v float64) model.OHLCV {
	return model.OHLCV{
		Time:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day),
		Open:   o,
		High:   h,
		Low:    l,
		Close:  c,
		Volume: v,
	}
}

func TestPastWindowExtremes(t *testing.T) {
	bars := []model.AnnotatedBar{
		{OHLCV: bar(0, 10, 50, 1, 10, 0)}, // outside the window
		{OHLCV: bar(5, 10, 12, 8, 10, 0)},
		{OHLCV: bar(6, 10, 14, 9, 10, 0)},
		{OHLCV: bar(7, 10, 11, 7, 10, 0)},
	}
	low, high, ok := PastWindowExtremes(bars, 3, 3*24*time.Hour)
	if !ok {
		t.Fatal("expected non-empty window")
	}
	if low != 8 || high != 14 {
		t.Errorf("expected low=8 high=14, got low=%.0f high=%.0f", low, high)
	}

	if _, _, ok := PastWindowExtremes(bars, 0, 3*24*time.Hour); ok {
		t.Error("expected empty window for first bar")
	}
	if _, _, ok := PastWindowExtremes(bars, 1, 24*time.Hour); ok {
		t.Error("expected empty window when previous bar is too old")
	}
}

func TestPreprocess_DoesNotMutateInput(t *testing.T) {
	s := model.Series{Symbol: "TEST", Granularity: model.Daily}
	for i := 0; i < 20; i++ {
		s.Bars = append(s.Bars, bar(i, 100, 101, 99, 100+float64(i%3), float64(1000+i)))
	}
	before := make([]model.OHLCV, len(s.Bars))
	copy(before, s.Bars)

	out := Preprocess(s, 5)

	for i := range before {
		if before[i] != s.Bars[i] {
			t.Fatalf("bar %d mutated", i)
		}
	}
	if len(out.Bars) != len(s.Bars) {
		t.Fatalf("expected %d bars, got %d", len(s.Bars), len(out.Bars))
	}
	if out.Bars[3].HasAvgVolume || !out.Bars[4].HasAvgVolume {
		t.Error("volume baseline should start at index 4 for window 5")
	}
	if !approx(out.Bars[4].AvgVolume, 1002) {
		t.Errorf("expected avg volume 1002, got %.4f", out.Bars[4].AvgVolume)
	}
	if out.Bars[13].HasMomentum || !out.Bars[14].HasMomentum {
		t.Error("momentum should start at index 14")
	}
	if out.Symbol != "TEST" || out.Granularity != model.Daily {
		t.Errorf("expected symbol/granularity carried over, got %s/%s", out.Symbol, out.Granularity)
	}
}

func TestRSISeries_FlatSeriesIsMaximal(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100
	}
	rsi, ok := RSISeries(closes, DefaultRSIPeriod)
	if ok[DefaultRSIPeriod-1] {
		t.Errorf("index %d: expected undefined momentum", DefaultRSIPeriod-1)
	}
	for i := DefaultRSIPeriod; i < len(closes); i++ {
		if !ok[i] || rsi[i] != 100 {
			t.Errorf("index %d: expected RSI 100 on a flat series, got %.4f (defined %v)", i, rsi[i], ok[i])
		}
	}

	// After a decline the library value is used again.
	closes[17], closes[18], closes[19] = 99, 99, 99
	rsi, _ = RSISeries(closes, DefaultRSIPeriod)
	if !approx(rsi[19], 0) {
		t.Errorf("expected RSI 0 after the only move is a loss, got %.4f", rsi[19])
	}
}
