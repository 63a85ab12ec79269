package model

import "time"

// TickerFailure records why one symbol could not be scanned.
type TickerFailure struct {
	Symbol string `json:"symbol"`
	Stage  string `json:"stage"`
	Error  string `json:"error"`
}

// ScanReport is the outcome of one pass over the universe.
type ScanReport struct {
	RunID      string          `json:"run_id"`
	AsOf       time.Time       `json:"as_of"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Tickers    int             `json:"tickers"`
	Skipped    []string        `json:"skipped"`
	Failures   []TickerFailure `json:"failures"`
	Signals    []Signal        `json:"signals"`
}

// Alerts returns the signal messages in report order.
func (r *ScanReport) Alerts() []string {
	out := make([]string, len(r.Signals))
	for i, s := range r.Signals {
		out[i] = s.Message
	}
	return out
}

// Count returns how many signals of the given kind and granularity were found.
func (r *ScanReport) Count(kind PatternKind, g Granularity) int {
	n := 0
	for _, s := range r.Signals {
		if s.Kind == kind && s.Granularity == g {
			n++
		}
	}
	return n
}
