// Package report renders the decorated analysis series into charts and a
// one-page PDF.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rustyeddy/fxsignal/analysis"
)

// Builder renders the report artifacts for an analysis result.
type Builder struct {
	OutputDir string
	PDFName   string
	SavePNGs  bool
}

// Build renders both charts in memory first, so a failed run writes nothing,
// then writes the PDF (and optionally the chart PNGs). It returns the PDF path.
func (b Builder) Build(res *analysis.Result) (string, error) {
	price, err := PriceChart(res)
	if err != nil {
		return "", err
	}
	rsi, err := RSIChart(res)
	if err != nil {
		return "", err
	}

	dir := b.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	if b.SavePNGs {
		if err := os.WriteFile(filepath.Join(dir, "price.png"), price, 0644); err != nil {
			return "", fmt.Errorf("write price chart: %w", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "rsi.png"), rsi, 0644); err != nil {
			return "", fmt.Errorf("write rsi chart: %w", err)
		}
	}

	name := b.PDFName
	if name == "" {
		name = "report.pdf"
	}
	path := filepath.Join(dir, name)
	if err := BuildPDF(res, price, rsi, path); err != nil {
		return "", err
	}
	return path, nil
}
