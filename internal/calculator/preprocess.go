package calculator

import "TailSentinel/internal/model"

// Preprocess attaches the rolling volume baseline and the RSI momentum to
// every bar. The input series is left untouched.
func Preprocess(s model.Series, volumeWindow int) model.AnnotatedSeries {
	avg, avgOK := RollingMean(extractVolumes(s.Bars), volumeWindow)
	rsi, rsiOK := RSISeries(extractCloses(s.Bars), DefaultRSIPeriod)

	bars := make([]model.AnnotatedBar, len(s.Bars))
	for i, b := range s.Bars {
		bars[i] = model.AnnotatedBar{
			OHLCV:        b,
			AvgVolume:    avg[i],
			HasAvgVolume: avgOK[i],
			Momentum:     rsi[i],
			HasMomentum:  rsiOK[i],
		}
	}
	return model.AnnotatedSeries{
		Symbol:      s.Symbol,
		Granularity: s.Granularity,
		Bars:        bars,
	}
}
