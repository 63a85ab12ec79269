package strategy

import (
	"time"

	"TailSentinel/internal/model"
)

var start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func flatBar(i int, step time.Duration) model.OHLCV {
	return model.OHLCV{
		Time:   start.Add(time.Duration(i) * step),
		Open:   100,
		High:   101,
		Low:    95,
		Close:  100,
		Volume: 1000,
	}
}

// bottomingSeries builds n flat bars whose last bar is a bottoming tail:
// body 0.2, low 90 against a prior minimum of 95, volume 3x the flat bars.
func bottomingSeries(n int, g model.Granularity, step time.Duration) model.Series {
	s := model.Series{Symbol: "TEST", Granularity: g}
	for i := 0; i < n-1; i++ {
		s.Bars = append(s.Bars, flatBar(i, step))
	}
	s.Bars = append(s.Bars, model.OHLCV{
		Time:   start.Add(time.Duration(n-1) * step),
		Open:   99.8,
		High:   101,
		Low:    90,
		Close:  100,
		Volume: 3000,
	})
	return s
}

func lastTime(s model.Series) time.Time { return s.Bars[len(s.Bars)-1].Time }

// mirror reflects every price around 100 so highs become lows.
func mirror(s model.Series) model.Series {
	out := model.Series{Symbol: s.Symbol, Granularity: s.Granularity}
	for _, b := range s.Bars {
		out.Bars = append(out.Bars, model.OHLCV{
			Time:   b.Time,
			Open:   200 - b.Open,
			High:   200 - b.Low,
			Low:    200 - b.High,
			Close:  200 - b.Close,
			Volume: b.Volume,
		})
	}
	return out
}
