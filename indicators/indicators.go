// Package indicators provides technical analysis indicators over daily price series
package indicators

import (
	"errors"

	"github.com/rustyeddy/fxsignal/market"
)

// ErrInvalidWindow means the requested lookback window cannot produce a single
// defined value over the given series.
var ErrInvalidWindow = errors.New("indicators: invalid window")

// Indicator computes a single streaming value from daily observations.
// It is deterministic and produces the same values as the batch functions.
type Indicator interface {
	// Name returns a stable identifier like "RSI(14)".
	Name() string

	// Warmup returns how many updates are needed before Ready() can be true.
	Warmup() int

	// Reset clears all internal state.
	Reset()

	// Update consumes the next daily observation and updates internal state.
	Update(p market.PricePoint)

	// Ready reports whether Value() is meaningful (warmup completed).
	Ready() bool

	// Value returns the current indicator value. If !Ready(), it returns 0 —
	// callers should always check Ready().
	Value() float64
}
