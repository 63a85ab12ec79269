package model

import "time"

// Granularity is the bar interval of a series.
type Granularity string

const (
	Daily  Granularity = "DAILY"
	Weekly Granularity = "WEEKLY"
)

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Body is the absolute distance between open and close.
func (b OHLCV) Body() float64 {
	if b.Close > b.Open {
		return b.Close - b.Open
	}
	return b.Open - b.Close
}

// Range is high minus low.
func (b OHLCV) Range() float64 { return b.High - b.Low }

// Series is a chronologically ordered, de-duplicated run of bars for one symbol.
type Series struct {
	Symbol      string
	Granularity Granularity
	Bars        []OHLCV
}

// AnnotatedBar is a bar with its derived fields. The Has* flags mark whether
// the matching value is defined; an undefined value is never read as zero.
type AnnotatedBar struct {
	OHLCV
	AvgVolume    float64
	HasAvgVolume bool
	Momentum     float64
	HasMomentum  bool
}

// AnnotatedSeries is the preprocessed view of a Series.
type AnnotatedSeries struct {
	Symbol      string
	Granularity Granularity
	Bars        []AnnotatedBar
}
