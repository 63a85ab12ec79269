package calculator

import (
	"math"
	"time"

	"TailSentinel/internal/model"
)

// PastWindowExtremes scans the bars strictly before index i whose time is
// within span of bars[i] and returns their lowest low and highest high.
// ok is false when no such bar exists.
func PastWindowExtremes(bars []model.AnnotatedBar, i int, span time.Duration) (low, high float64, ok bool) {
	if i <= 0 || i >= len(bars) {
		return 0, 0, false
	}
	cutoff := bars[i].Time.Add(-span)
	low = math.Inf(1)
	high = math.Inf(-1)
	for j := i - 1; j >= 0; j-- {
		if bars[j].Time.Before(cutoff) {
			break
		}
		if bars[j].Low < low {
			low = bars[j].Low
		}
		if bars[j].High > high {
			high = bars[j].High
		}
		ok = true
	}
	return low, high, ok
}
