package indicators

import (
	"fmt"

	"github.com/rustyeddy/fxsignal/market"
)

// RelativeStrength is a streaming RSI indicator. Once warm it produces the
// same values as the batch RSI function.
type RelativeStrength struct {
	window int

	gains  []float64 // trailing window of split deltas, oldest first
	losses []float64

	lastClose float64
	haveLast  bool
}

// NewRSI creates a streaming RSI indicator with the given window.
func NewRSI(window int) *RelativeStrength {
	return &RelativeStrength{
		window: window,
		gains:  make([]float64, 0, window),
		losses: make([]float64, 0, window),
	}
}

func (r *RelativeStrength) Name() string {
	return fmt.Sprintf("RSI(%d)", r.window)
}

func (r *RelativeStrength) Warmup() int {
	// window deltas require window+1 observations
	return r.window + 1
}

func (r *RelativeStrength) Reset() {
	r.gains = r.gains[:0]
	r.losses = r.losses[:0]
	r.lastClose = 0
	r.haveLast = false
}

func (r *RelativeStrength) Update(p market.PricePoint) {
	if !r.haveLast {
		r.lastClose = p.Close
		r.haveLast = true
		return
	}

	d := p.Close - r.lastClose
	r.lastClose = p.Close

	gain, loss := 0.0, 0.0
	if d > 0 {
		gain = d
	} else {
		loss = -d
	}

	r.gains = append(r.gains, gain)
	r.losses = append(r.losses, loss)
	if len(r.gains) > r.window {
		r.gains = r.gains[1:]
		r.losses = r.losses[1:]
	}
}

func (r *RelativeStrength) Ready() bool {
	return len(r.gains) >= r.window
}

// Value returns the current RSI, NaN for a flat window, or 0 before warmup.
func (r *RelativeStrength) Value() float64 {
	if !r.Ready() {
		return 0
	}

	var sumGain, sumLoss float64
	for i := range r.gains {
		sumGain += r.gains[i]
		sumLoss += r.losses[i]
	}
	return rsiValue(sumGain/float64(r.window), sumLoss/float64(r.window))
}
