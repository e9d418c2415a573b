// Package analysis wires the daily FX pipeline: normalize raw observations,
// compute the RSI oscillator and derive threshold trade signals.
package analysis

import (
	"fmt"
	"time"

	"github.com/rustyeddy/fxsignal/indicators"
	"github.com/rustyeddy/fxsignal/market"
	"github.com/rustyeddy/fxsignal/signals"
)

// Config carries the parameters for a single analysis run. It is an explicit
// immutable value; the pipeline stages share nothing else.
type Config struct {
	Pair       string
	Window     int
	Overbought float64
	Oversold   float64
}

// DefaultConfig returns the conventional RSI(14) 70/30 setup for a pair.
func DefaultConfig(pair string) Config {
	return Config{
		Pair:       pair,
		Window:     indicators.DefaultRSIWindow,
		Overbought: signals.DefaultOverbought,
		Oversold:   signals.DefaultOversold,
	}
}

// Row is one day of the decorated series handed to the report pipeline.
// RSI is NaN where the oscillator is undefined.
type Row struct {
	Date     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	RSI      float64
	Signal   signals.Signal
	Position signals.Signal
}

// Result is the decorated series for one analysis run.
type Result struct {
	Pair       string
	Window     int
	Overbought float64
	Oversold   float64
	Rows       []Row
}

// Start returns the date of the first observation.
func (r *Result) Start() time.Time { return r.Rows[0].Date }

// End returns the date of the last observation.
func (r *Result) End() time.Time { return r.Rows[len(r.Rows)-1].Date }

// Run executes the full pipeline over raw daily observations. It either
// returns a fully decorated series or an error; partial results are never
// produced.
func Run(raw market.RawSeries, cfg Config) (*Result, error) {
	series, err := market.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	rsi, err := indicators.RSI(series.Closes(), cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}

	gen := signals.Generator{Overbought: cfg.Overbought, Oversold: cfg.Oversold}
	sigs := gen.Signals(rsi)
	pos := signals.Positions(sigs)

	rows := make([]Row, series.Len())
	for i := range rows {
		p := series.Point(i)
		rows[i] = Row{
			Date:     p.Date,
			Open:     p.Open,
			High:     p.High,
			Low:      p.Low,
			Close:    p.Close,
			RSI:      rsi[i],
			Signal:   sigs[i],
			Position: pos[i],
		}
	}

	return &Result{
		Pair:       cfg.Pair,
		Window:     cfg.Window,
		Overbought: cfg.Overbought,
		Oversold:   cfg.Oversold,
		Rows:       rows,
	}, nil
}
