package indicators

import (
	"fmt"
	"math"
)

// DefaultRSIWindow is the conventional RSI lookback.
const DefaultRSIWindow = 14

// RSI calculates the Relative Strength Index over closing prices using a
// simple moving average of gains and losses across the trailing window of
// day-over-day deltas.
//
// The result has the same length as closes. Indices below window, and windows
// with no price movement at all, are undefined and returned as NaN. Defined
// values lie in [0,100]; a window with gains and zero losses returns 100.
func RSI(closes []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}
	if window >= len(closes) {
		return nil, fmt.Errorf("%w: window %d needs at least %d observations, got %d",
			ErrInvalidWindow, window, window+1, len(closes))
	}

	n := len(closes)

	// gains[i] and losses[i] hold the split delta close[i]-close[i-1];
	// index 0 has no prior day and stays zero (it is never inside a window).
	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		d := closes[i] - closes[i-1]
		if d > 0 {
			gains[i] = d
		} else {
			losses[i] = -d
		}
	}

	out := make([]float64, n)
	for i := 0; i < window; i++ {
		out[i] = math.NaN()
	}
	for i := window; i < n; i++ {
		var sumGain, sumLoss float64
		for j := i - window + 1; j <= i; j++ {
			sumGain += gains[j]
			sumLoss += losses[j]
		}
		out[i] = rsiValue(sumGain/float64(window), sumLoss/float64(window))
	}

	return out, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	switch {
	case avgLoss == 0 && avgGain == 0:
		// Flat window: the gain/loss ratio is indeterminate, so the value
		// stays undefined rather than inheriting an accidental 0 or 100.
		return math.NaN()
	case avgLoss == 0:
		return 100
	default:
		rs := avgGain / avgLoss
		return 100 - 100/(1+rs)
	}
}
