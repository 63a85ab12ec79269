package calculator

import (
	"github.com/markcheno/go-talib"
)

// DefaultRSIPeriod is the Wilder lookback used for the momentum field.
const DefaultRSIPeriod = 14

// RSISeries computes the Wilder-smoothed RSI of closes. The first period
// entries have no value; a series of period bars or fewer has none at all.
// Until the first decline the value is 100, flat stretches included.
func RSISeries(closes []float64, period int) ([]float64, []bool) {
	out := make([]float64, len(closes))
	ok := make([]bool, len(closes))
	if period < 2 || len(closes) <= period {
		return out, ok
	}
	rsi := talib.Rsi(closes, period)
	declined := false
	for i := 1; i < len(closes); i++ {
		declined = declined || closes[i] < closes[i-1]
		if i < period {
			continue
		}
		// talib reports 0 when the averages are both zero.
		if declined {
			out[i] = rsi[i]
		} else {
			out[i] = 100
		}
		ok[i] = true
	}
	return out, ok
}
