// Package signals maps RSI values to discrete trade signals.
package signals

import "math"

// Signal is a discrete trade signal derived from the RSI oscillator.
type Signal int

const (
	Sell    Signal = -1
	Neutral Signal = 0
	Buy     Signal = 1
)

func (s Signal) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "NEUTRAL"
	}
}

// Conventional RSI reversal thresholds.
const (
	DefaultOverbought = 70.0
	DefaultOversold   = 30.0
)

// Generator derives signals from an RSI series using fixed thresholds.
// The rule is stateless: each index depends only on its own RSI value.
type Generator struct {
	Overbought float64
	Oversold   float64
}

// NewGenerator returns a Generator with the conventional 70/30 thresholds.
func NewGenerator() Generator {
	return Generator{Overbought: DefaultOverbought, Oversold: DefaultOversold}
}

// Signals maps each RSI value to a signal. Undefined (NaN) values map to
// Neutral, as do values exactly on a threshold (strict inequality only).
func (g Generator) Signals(rsi []float64) []Signal {
	out := make([]Signal, len(rsi))
	for i, v := range rsi {
		switch {
		case math.IsNaN(v):
			out[i] = Neutral
		case v > g.Overbought:
			out[i] = Sell
		case v < g.Oversold:
			out[i] = Buy
		default:
			out[i] = Neutral
		}
	}
	return out
}

// Positions lags signals by one day: the position taken at the open of day i
// reflects the signal generated on day i-1. The first day has no prior signal
// and is Neutral.
func Positions(sigs []Signal) []Signal {
	out := make([]Signal, len(sigs))
	for i := 1; i < len(sigs); i++ {
		out[i] = sigs[i-1]
	}
	return out
}
