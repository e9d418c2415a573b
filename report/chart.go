package report

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rustyeddy/fxsignal/analysis"
	"github.com/rustyeddy/fxsignal/signals"
)

const (
	chartWidth  = 1024
	chartHeight = 512
)

// PriceChart renders the close-price line with buy/sell markers as a PNG.
func PriceChart(res *analysis.Result) ([]byte, error) {
	xs := make([]time.Time, len(res.Rows))
	ys := make([]float64, len(res.Rows))
	for i, row := range res.Rows {
		xs[i] = row.Date
		ys[i] = row.Close
	}

	series := []chart.Series{
		chart.TimeSeries{
			Name:    "Close",
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 1.5},
		},
	}
	if s := markerSeries(res, signals.Buy, "Buy", chart.ColorGreen); s != nil {
		series = append(series, s)
	}
	if s := markerSeries(res, signals.Sell, "Sell", chart.ColorRed); s != nil {
		series = append(series, s)
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s Close Price", res.Pair),
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{ValueFormatter: chart.TimeDateValueFormatter},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render price chart: %w", err)
	}
	return buf.Bytes(), nil
}

// markerSeries returns dot markers at the closes of days carrying the wanted
// signal, or nil when there are none.
func markerSeries(res *analysis.Result, want signals.Signal, name string, color drawing.Color) chart.Series {
	var xs []time.Time
	var ys []float64
	for _, row := range res.Rows {
		if row.Signal == want {
			xs = append(xs, row.Date)
			ys = append(ys, row.Close)
		}
	}
	if len(xs) == 0 {
		return nil
	}
	return chart.TimeSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    5,
			DotColor:    color,
		},
	}
}

// RSIChart renders the oscillator with its threshold lines as a PNG. It needs
// at least two defined oscillator values to draw a line.
func RSIChart(res *analysis.Result) ([]byte, error) {
	var xs []time.Time
	var ys []float64
	for _, row := range res.Rows {
		if math.IsNaN(row.RSI) {
			continue
		}
		xs = append(xs, row.Date)
		ys = append(ys, row.RSI)
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("need at least 2 defined RSI values to chart, got %d", len(xs))
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("RSI(%d)", res.Window),
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{ValueFormatter: chart.TimeDateValueFormatter},
		YAxis:  chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: 100}},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "RSI",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: chart.ColorOrange, StrokeWidth: 1.5},
			},
			thresholdLine("Overbought", res.Overbought, xs, chart.ColorRed),
			thresholdLine("Oversold", res.Oversold, xs, chart.ColorGreen),
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render rsi chart: %w", err)
	}
	return buf.Bytes(), nil
}

func thresholdLine(name string, level float64, xs []time.Time, color drawing.Color) chart.Series {
	return chart.TimeSeries{
		Name:    name,
		XValues: []time.Time{xs[0], xs[len(xs)-1]},
		YValues: []float64{level, level},
		Style: chart.Style{
			StrokeColor:     color,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}
