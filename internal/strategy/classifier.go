package strategy

import (
	"time"

	"TailSentinel/internal/calculator"
	"TailSentinel/internal/model"
)

// Thresholds holds the detection tunables.
type Thresholds struct {
	TailRatio        float64 // wick must exceed TailRatio * body
	MinBodySize      float64 // in price units
	VolumeMultiplier float64
	LookbackDays     int // recency cutoff, also the warm-up offset base
	ComparisonDays   int // width of the past extremum window
}

// DefaultThresholds returns the stock detection settings.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TailRatio:        2,
		MinBodySize:      0.1,
		VolumeMultiplier: 1.2,
		LookbackDays:     10,
		ComparisonDays:   180,
	}
}

// Profile parameterizes a scan by bar granularity.
type Profile struct {
	Granularity  model.Granularity
	VolumeWindow int
	// WarmUpDivisor scales LookbackDays down to a bar count.
	WarmUpDivisor int
}

// DailyProfile scans daily bars with a 5-bar volume baseline.
var DailyProfile = Profile{Granularity: model.Daily, VolumeWindow: 5, WarmUpDivisor: 1}

// WeeklyProfile scans weekly bars with a 3-bar volume baseline.
var WeeklyProfile = Profile{Granularity: model.Weekly, VolumeWindow: 3, WarmUpDivisor: 7}

// ProfileFor returns the profile matching g.
func ProfileFor(g model.Granularity) Profile {
	if g == model.Weekly {
		return WeeklyProfile
	}
	return DailyProfile
}

// WarmUp is the first bar index evaluated.
func (p Profile) WarmUp(th Thresholds) int {
	if p.WarmUpDivisor <= 1 {
		return th.LookbackDays
	}
	return th.LookbackDays / p.WarmUpDivisor
}

// Polarity selects which extreme a tail rejects.
type Polarity int

const (
	SeekLow  Polarity = iota // bottoming tail
	SeekHigh                 // topping tail
)

// Kind maps the polarity to the pattern it detects.
func (p Polarity) Kind() model.PatternKind {
	if p == SeekHigh {
		return model.ToppingTail
	}
	return model.BottomingTail
}

func days(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }

// ClassifyPolarity reports whether bar i of s is a tail of the given polarity.
func ClassifyPolarity(s model.AnnotatedSeries, i int, p Profile, th Thresholds, asOf time.Time, pol Polarity) (model.PatternKind, bool) {
	if i < p.WarmUp(th) || i < 0 || i >= len(s.Bars) {
		return "", false
	}
	b := s.Bars[i]

	body := b.Body()
	if body < th.MinBodySize {
		return "", false
	}
	if b.HasAvgVolume && b.Volume < th.VolumeMultiplier*b.AvgVolume {
		return "", false
	}
	if b.Time.Before(asOf.Add(-days(th.LookbackDays))) {
		return "", false
	}

	rng := b.Range()
	switch pol {
	case SeekLow:
		lowerWick := max(min(b.Close, b.Open)-b.Low, 0)
		if b.Close < b.High-0.25*rng || lowerWick <= th.TailRatio*body {
			return "", false
		}
	case SeekHigh:
		upperWick := max(b.High-max(b.Close, b.Open), 0)
		if b.Close > b.Low+0.25*rng || upperWick <= th.TailRatio*body {
			return "", false
		}
	}

	pastLow, pastHigh, ok := calculator.PastWindowExtremes(s.Bars, i, days(th.ComparisonDays))
	if !ok {
		return "", false
	}
	if pol == SeekLow && !(b.Low < pastLow) {
		return "", false
	}
	if pol == SeekHigh && !(b.High > pastHigh) {
		return "", false
	}
	return pol.Kind(), true
}

// Classify evaluates bar i for both patterns, bottoming tail first.
func Classify(s model.AnnotatedSeries, i int, p Profile, th Thresholds, asOf time.Time) []model.PatternKind {
	var kinds []model.PatternKind
	for _, pol := range []Polarity{SeekLow, SeekHigh} {
		if k, ok := ClassifyPolarity(s, i, p, th, asOf, pol); ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
