package notifier

import (
	"fmt"
	"strings"
	"time"

	"TailSentinel/internal/model"
)

// FormatRunSummary formats a scan report into a short status message.
func FormatRunSummary(r *model.ScanReport) string {
	if r == nil {
		return "No scan has completed yet."
	}
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 TailSentinel scan | %s\n\n", r.AsOf.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Tickers: %d | Skipped: %d | Failed: %d\n", r.Tickers, len(r.Skipped), len(r.Failures)))
	b.WriteString(fmt.Sprintf("Duration: %s\n", r.FinishedAt.Sub(r.StartedAt).Round(time.Second)))

	if len(r.Signals) == 0 {
		b.WriteString("\nNo tail signals detected.")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("\nSignals: %d\n", len(r.Signals)))
	for _, g := range []model.Granularity{model.Daily, model.Weekly} {
		for _, k := range []model.PatternKind{model.BottomingTail, model.ToppingTail} {
			if n := r.Count(k, g); n > 0 {
				b.WriteString(fmt.Sprintf("  %s %s: %d\n", strings.ToLower(string(g)), k.Label(), n))
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatFailures lists the failed tickers, one per line.
func FormatFailures(r *model.ScanReport) string {
	if r == nil || len(r.Failures) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("❌ Failed tickers:\n")
	for _, f := range r.Failures {
		b.WriteString(fmt.Sprintf("  %s (%s): %s\n", f.Symbol, f.Stage, f.Error))
	}
	return strings.TrimRight(b.String(), "\n")
}
