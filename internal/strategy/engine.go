package strategy

import (
	"time"

	"TailSentinel/internal/calculator"
	"TailSentinel/internal/model"
)

// Scan classifies every bar from the warm-up offset on and returns the
// signals in chronological order.
func Scan(s model.AnnotatedSeries, p Profile, th Thresholds, asOf time.Time) []model.Signal {
	var signals []model.Signal
	for i := p.WarmUp(th); i < len(s.Bars); i++ {
		for _, kind := range Classify(s, i, p, th, asOf) {
			signals = append(signals, Annotate(kind, s.Symbol, p.Granularity, s.Bars[i]))
		}
	}
	return signals
}

// ScanSeries preprocesses a raw series with the profile's volume window and scans it.
func ScanSeries(s model.Series, p Profile, th Thresholds, asOf time.Time) []model.Signal {
	return Scan(calculator.Preprocess(s, p.VolumeWindow), p, th, asOf)
}

// ScanAlerts returns only the alert messages of ScanSeries.
func ScanAlerts(s model.Series, p Profile, th Thresholds, asOf time.Time) []string {
	signals := ScanSeries(s, p, th, asOf)
	alerts := make([]string, len(signals))
	for i, sig := range signals {
		alerts[i] = sig.Message
	}
	return alerts
}
