package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/rustyeddy/fxsignal/analysis"
	"github.com/rustyeddy/fxsignal/market"
)

// BuildPDF assembles the one-page report embedding the rendered charts and
// writes it to path.
func BuildPDF(res *analysis.Result, priceChart, rsiChart []byte, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s Currency Analysis Report", res.Pair), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	sub := fmt.Sprintf("%s to %s  |  RSI(%d), thresholds %g/%g  |  %d observations",
		res.Start().Format(market.DateLayout),
		res.End().Format(market.DateLayout),
		res.Window, res.Overbought, res.Oversold, len(res.Rows))
	pdf.CellFormat(0, 6, sub, "", 1, "C", false, 0, "")

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("price", opts, bytes.NewReader(priceChart))
	pdf.ImageOptions("price", 10, 30, 190, 0, false, opts, 0, "")
	pdf.RegisterImageOptionsReader("rsi", opts, bytes.NewReader(rsiChart))
	pdf.ImageOptions("rsi", 10, 135, 190, 0, false, opts, 0, "")

	if pdf.Err() {
		return fmt.Errorf("build pdf: %v", pdf.Error())
	}
	return pdf.OutputFileAndClose(path)
}
