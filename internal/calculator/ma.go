package calculator

import (
	"TailSentinel/internal/model"

	"github.com/markcheno/go-talib"
)

// RollingMean returns the trailing simple moving average of values over
// window. Entry i is defined only when i >= window-1; the returned mask
// reports which entries are defined.
func RollingMean(values []float64, window int) ([]float64, []bool) {
	out := make([]float64, len(values))
	ok := make([]bool, len(values))
	// talib.Sma indexes past the input when it is shorter than the period.
	if window <= 0 || len(values) < window {
		return out, ok
	}
	sma := talib.Sma(values, window)
	for i := window - 1; i < len(values); i++ {
		out[i] = sma[i]
		ok[i] = true
	}
	return out, ok
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

func extractVolumes(bars []model.OHLCV) []float64 {
	vols := make([]float64, len(bars))
	for i, b := range bars {
		vols[i] = b.Volume
	}
	return vols
}
