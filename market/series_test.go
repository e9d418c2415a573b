package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawDay(o, h, l, c string) map[string]string {
	return map[string]string{
		LabelOpen:  o,
		LabelHigh:  h,
		LabelLow:   l,
		LabelClose: c,
	}
}

func TestNormalizeSortsAscending(t *testing.T) {
	raw := RawSeries{
		"2024-01-03": rawDay("1.0900", "1.1000", "1.0800", "1.0950"),
		"2024-01-01": rawDay("1.1000", "1.1100", "1.0900", "1.1000"),
		"2024-01-02": rawDay("1.1100", "1.1200", "1.1000", "1.1050"),
	}

	s, err := Normalize(raw)
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), s.Point(0).Date)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), s.Point(1).Date)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), s.Point(2).Date)

	assert.Equal(t, []float64{1.1000, 1.1050, 1.0950}, s.Closes())
	assert.InDelta(t, 1.0900, s.Point(2).Open, 1e-12)
	assert.InDelta(t, 1.1000, s.Point(2).High, 1e-12)
	assert.InDelta(t, 1.0800, s.Point(2).Low, 1e-12)
}

func TestNormalizeEmpty(t *testing.T) {
	_, err := Normalize(RawSeries{})
	assert.ErrorIs(t, err, ErrEmptySeries)

	_, err = Normalize(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestNormalizeMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  RawSeries
	}{
		{
			name: "non-numeric close",
			raw:  RawSeries{"2024-01-01": rawDay("1.10", "1.11", "1.09", "N/A")},
		},
		{
			name: "missing close field",
			raw: RawSeries{"2024-01-01": map[string]string{
				LabelOpen: "1.10",
				LabelHigh: "1.11",
				LabelLow:  "1.09",
			}},
		},
		{
			name: "unparseable date",
			raw:  RawSeries{"01/02/2024": rawDay("1.10", "1.11", "1.09", "1.10")},
		},
		{
			name: "negative price",
			raw:  RawSeries{"2024-01-01": rawDay("-1.10", "1.11", "1.09", "1.10")},
		},
		{
			name: "non-finite price",
			raw:  RawSeries{"2024-01-01": rawDay("1.10", "1.11", "1.09", "NaN")},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.raw)
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestNewSeriesRejectsDuplicateDates(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	points := []PricePoint{
		{Date: day, Close: 1.10},
		{Date: day.AddDate(0, 0, 1), Close: 1.11},
		{Date: day, Close: 1.12},
	}

	_, err := NewSeries(points)
	assert.ErrorIs(t, err, ErrDuplicateDate)
}

func TestNewSeriesEmpty(t *testing.T) {
	_, err := NewSeries(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestPointsReturnsCopy(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s, err := NewSeries([]PricePoint{
		{Date: day, Close: 1.10},
		{Date: day.AddDate(0, 0, 1), Close: 1.11},
	})
	require.NoError(t, err)

	pts := s.Points()
	pts[0].Close = 9.99

	assert.InDelta(t, 1.10, s.Point(0).Close, 1e-12)
}
