package cmd

import (
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Fetch a daily FX series and generate the RSI signal report",
	Long: `Report runs the full pipeline once: fetch the daily series for the
configured currency pair, compute RSI, derive buy/sell signals and write the
chart PNGs and the one-page PDF report.

Example:
  fxsignal report --from EUR --to USD --window 14 -o ./out`,
	RunE: runReport,
}

var (
	rptFrom   string
	rptTo     string
	rptWindow int
	rptInput  string
	rptOutDir string
	rptPDF    string
	rptFull   bool
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&rptFrom, "from", "", "base currency (overrides config)")
	reportCmd.Flags().StringVar(&rptTo, "to", "", "quote currency (overrides config)")
	reportCmd.Flags().IntVarP(&rptWindow, "window", "w", 0, "RSI window (overrides config)")
	reportCmd.Flags().StringVarP(&rptInput, "input", "i", "", "read a saved FX_DAILY response (.json or .json.xz) instead of fetching")
	reportCmd.Flags().StringVarP(&rptOutDir, "out", "o", "", "output directory (overrides config)")
	reportCmd.Flags().StringVar(&rptPDF, "pdf", "", "PDF file name (overrides config)")
	reportCmd.Flags().BoolVar(&rptFull, "full", false, "request the full history instead of the trailing 100 days")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if rptFrom != "" {
		cfg.Pair.From = rptFrom
	}
	if rptTo != "" {
		cfg.Pair.To = rptTo
	}
	if rptWindow > 0 {
		cfg.Analysis.Window = rptWindow
	}
	if rptOutDir != "" {
		cfg.Report.OutputDir = rptOutDir
	}
	if rptPDF != "" {
		cfg.Report.PDFName = rptPDF
	}
	if rptFull {
		cfg.Fetch.Full = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	return runPipeline(cmd.Context(), cfg, rptInput)
}
