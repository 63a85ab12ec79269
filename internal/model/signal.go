package model

// PatternKind identifies the detected reversal pattern.
type PatternKind string

const (
	BottomingTail PatternKind = "BOTTOMING_TAIL"
	ToppingTail   PatternKind = "TOPPING_TAIL"
)

// Label returns the human-readable pattern name.
func (k PatternKind) Label() string {
	switch k {
	case BottomingTail:
		return "Bottoming Tail"
	case ToppingTail:
		return "Topping Tail"
	default:
		return string(k)
	}
}

// Signal is one detected pattern with its suggested trade levels.
type Signal struct {
	Kind        PatternKind `json:"kind"`
	Symbol      string      `json:"symbol"`
	Granularity Granularity `json:"granularity"`
	Bar         OHLCV       `json:"bar"`
	Momentum    float64     `json:"momentum"`
	HasMomentum bool        `json:"has_momentum"`
	Entry       float64     `json:"entry"`
	StopLoss    float64     `json:"stop_loss"`
	TakeProfit  float64     `json:"take_profit"`
	Message     string      `json:"message"`
}
