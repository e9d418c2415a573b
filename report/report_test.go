package report

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/fxsignal/analysis"
	"github.com/rustyeddy/fxsignal/signals"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func makeResult() *analysis.Result {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	res := &analysis.Result{
		Pair:       "EURUSD",
		Window:     14,
		Overbought: 70,
		Oversold:   30,
	}

	gen := signals.NewGenerator()
	for i := 0; i < 30; i++ {
		rsi := math.NaN()
		if i >= 14 {
			// sweep the oscillator through both thresholds
			rsi = float64(20 + (i-14)*5)
		}
		sig := gen.Signals([]float64{rsi})[0]

		res.Rows = append(res.Rows, analysis.Row{
			Date:   day.AddDate(0, 0, i),
			Close:  1.10 + 0.002*float64(i),
			RSI:    rsi,
			Signal: sig,
		})
	}
	for i := 1; i < len(res.Rows); i++ {
		res.Rows[i].Position = res.Rows[i-1].Signal
	}
	return res
}

func TestPriceChartRendersPNG(t *testing.T) {
	png, err := PriceChart(makeResult())
	require.NoError(t, err)

	require.Greater(t, len(png), len(pngHeader))
	assert.Equal(t, pngHeader, png[:len(pngHeader)])
}

func TestRSIChartRendersPNG(t *testing.T) {
	png, err := RSIChart(makeResult())
	require.NoError(t, err)

	require.Greater(t, len(png), len(pngHeader))
	assert.Equal(t, pngHeader, png[:len(pngHeader)])
}

func TestRSIChartNeedsDefinedValues(t *testing.T) {
	res := makeResult()
	for i := range res.Rows {
		res.Rows[i].RSI = math.NaN()
	}

	_, err := RSIChart(res)
	assert.Error(t, err)
}

func TestBuilderBuild(t *testing.T) {
	dir := t.TempDir()

	b := Builder{OutputDir: dir, PDFName: "analysis.pdf", SavePNGs: true}
	path, err := b.Build(makeResult())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "analysis.pdf"), path)

	pdf, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(pdf), 4)
	assert.Equal(t, "%PDF", string(pdf[:4]))

	assert.FileExists(t, filepath.Join(dir, "price.png"))
	assert.FileExists(t, filepath.Join(dir, "rsi.png"))
}

func TestBuilderBuildNoPNGs(t *testing.T) {
	dir := t.TempDir()

	b := Builder{OutputDir: dir, PDFName: "analysis.pdf"}
	_, err := b.Build(makeResult())
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dir, "price.png"))
}
