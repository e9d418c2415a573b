package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxsignal/config"
	"github.com/rustyeddy/fxsignal/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "fxsignal",
	Short: "Daily FX RSI analysis and report generator",
	Long: `fxsignal fetches a daily foreign-exchange price series, computes the
Relative Strength Index, derives overbought/oversold trade signals and
renders a one-page PDF report with price and oscillator charts.

It provides tools for:
  - Fetching FX_DAILY series from Alpha Vantage (or replaying cached responses)
  - RSI computation and threshold signal generation
  - Chart and PDF report rendering
  - Journaling runs and signals to CSV or SQLite
  - Scheduled re-runs in watch mode`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verbose)
	},
}

var (
	cfgFile string
	verbose bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig returns the file config when --config is set, defaults otherwise.
// Environment overrides apply in both cases.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromFile(cfgFile)
	}

	cfg := config.Default()
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
