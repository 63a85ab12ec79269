package strategy

import (
	"fmt"
	"math"

	"TailSentinel/internal/model"

	"github.com/shopspring/decimal"
)

// Levels are the suggested trade prices for a signal.
type Levels struct {
	Entry      float64
	StopLoss   float64
	TakeProfit float64
}

// ComputeLevels derives entry, stop and target from the bar range.
func ComputeLevels(kind model.PatternKind, b model.OHLCV) Levels {
	rng := b.Range()
	if kind == model.ToppingTail {
		entry := b.High - 0.4*rng
		return Levels{Entry: entry, StopLoss: entry * 1.09, TakeProfit: entry * 0.88}
	}
	entry := b.Low + 0.4*rng
	return Levels{Entry: entry, StopLoss: entry * 0.91, TakeProfit: entry * 1.12}
}

// Annotate builds the signal for a classified bar, message included.
func Annotate(kind model.PatternKind, symbol string, g model.Granularity, b model.AnnotatedBar) model.Signal {
	lv := ComputeLevels(kind, b.OHLCV)
	sig := model.Signal{
		Kind:        kind,
		Symbol:      symbol,
		Granularity: g,
		Bar:         b.OHLCV,
		Momentum:    b.Momentum,
		HasMomentum: b.HasMomentum,
		Entry:       lv.Entry,
		StopLoss:    lv.StopLoss,
		TakeProfit:  lv.TakeProfit,
	}
	sig.Message = FormatAlert(sig)
	return sig
}

// FormatAlert renders the two-line alert text.
func FormatAlert(s model.Signal) string {
	icon := "🔹"
	if s.Kind == model.ToppingTail {
		icon = "🔻"
	}
	label := s.Kind.Label()
	if s.Granularity == model.Weekly {
		icon = "📅"
		label = "Weekly " + label
	}
	momentum := "n/a"
	if s.HasMomentum {
		momentum = price(s.Momentum)
	}
	return fmt.Sprintf("%s %s: %s on %s (RSI: %s)\nEntry: %s, Stop Loss: %s, Take Profit: %s",
		icon, s.Bar.Time.Format("2006-01-02"), label, s.Symbol, momentum,
		price(s.Entry), price(s.StopLoss), price(s.TakeProfit))
}

// exactExponent is below the smallest binary exponent, so the decimal keeps
// every digit of the float.
const exactExponent = -1100

// price rounds the exact binary value half to even, which is printf's %.2f.
func price(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return decimal.NewFromFloatWithExponent(v, exactExponent).StringFixedBank(2)
}
