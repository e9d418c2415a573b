package market

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"
)

// DateLayout is the calendar-date format used by the daily FX endpoint.
const DateLayout = "2006-01-02"

// Field labels as they appear in the FX_DAILY time-series object.
const (
	LabelOpen  = "1. open"
	LabelHigh  = "2. high"
	LabelLow   = "3. low"
	LabelClose = "4. close"
)

// RawSeries is the unordered time-series object of a daily FX response:
// date string -> field label -> decimal string.
type RawSeries map[string]map[string]string

// PriceSeries is a chronologically ascending sequence of daily observations,
// one per calendar day. It is immutable once constructed.
type PriceSeries struct {
	points []PricePoint
}

func (s PriceSeries) Len() int { return len(s.points) }

// Point returns the i-th observation in chronological order.
func (s PriceSeries) Point(i int) PricePoint { return s.points[i] }

// Points returns a copy of the observations so callers cannot mutate the series.
func (s PriceSeries) Points() []PricePoint {
	out := make([]PricePoint, len(s.points))
	copy(out, s.points)
	return out
}

// Closes returns the closing prices in chronological order.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s.points))
	for i, p := range s.points {
		out[i] = p.Close
	}
	return out
}

// Normalize turns a raw daily FX mapping into a typed, sorted PriceSeries.
// Any malformed record fails the whole conversion; records are never skipped
// or imputed.
func Normalize(raw RawSeries) (PriceSeries, error) {
	if len(raw) == 0 {
		return PriceSeries{}, ErrEmptySeries
	}

	points := make([]PricePoint, 0, len(raw))
	for date, fields := range raw {
		t, err := time.Parse(DateLayout, date)
		if err != nil {
			return PriceSeries{}, fmt.Errorf("%w: bad date %q", ErrMalformedInput, date)
		}

		p := PricePoint{Date: t}
		for _, f := range []struct {
			label string
			dst   *float64
		}{
			{LabelOpen, &p.Open},
			{LabelHigh, &p.High},
			{LabelLow, &p.Low},
			{LabelClose, &p.Close},
		} {
			v, err := parsePrice(fields, f.label)
			if err != nil {
				return PriceSeries{}, fmt.Errorf("%s: %w", date, err)
			}
			*f.dst = v
		}
		points = append(points, p)
	}

	return NewSeries(points)
}

// NewSeries builds a PriceSeries from already-typed points. Points are sorted
// ascending by date; duplicate dates are rejected.
func NewSeries(points []PricePoint) (PriceSeries, error) {
	if len(points) == 0 {
		return PriceSeries{}, ErrEmptySeries
	}

	ps := make([]PricePoint, len(points))
	copy(ps, points)
	sort.Slice(ps, func(i, j int) bool { return ps[i].Date.Before(ps[j].Date) })

	for i := 1; i < len(ps); i++ {
		if ps[i].Date.Equal(ps[i-1].Date) {
			return PriceSeries{}, fmt.Errorf("%w: %s", ErrDuplicateDate, ps[i].Date.Format(DateLayout))
		}
	}

	return PriceSeries{points: ps}, nil
}

func parsePrice(fields map[string]string, label string) (float64, error) {
	s, ok := fields[label]
	if !ok {
		return 0, fmt.Errorf("%w: missing field %q", ErrMalformedInput, label)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad %q value %q", ErrMalformedInput, label, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: %q out of range: %v", ErrMalformedInput, label, v)
	}
	return v, nil
}
