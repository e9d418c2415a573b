// Package journal records analysis runs and their trade signals for later review.
package journal

import (
	"time"

	"github.com/rustyeddy/fxsignal/signals"
)

// RunRecord summarizes one analysis run.
type RunRecord struct {
	RunID     string
	Pair      string
	Window    int
	Start     time.Time
	End       time.Time
	Points    int
	Generated time.Time
}

// SignalRecord is one non-neutral day of the decorated series.
type SignalRecord struct {
	RunID  string
	Date   time.Time
	Close  float64
	RSI    float64
	Signal signals.Signal
}

type Journal interface {
	RecordRun(RunRecord) error
	RecordSignal(SignalRecord) error
	Close() error
}

// Noop discards all records.
type Noop struct{}

func (Noop) RecordRun(RunRecord) error       { return nil }
func (Noop) RecordSignal(SignalRecord) error { return nil }
func (Noop) Close() error                    { return nil }
