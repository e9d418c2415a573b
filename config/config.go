// Package config loads and validates the fxsignal configuration.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// APIKeyEnv overrides fetch.api_key when set (also read from a .env file).
const APIKeyEnv = "ALPHAVANTAGE_API_KEY"

// Config represents the complete fxsignal configuration.
type Config struct {
	Pair     PairConfig     `yaml:"pair"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Report   ReportConfig   `yaml:"report"`
	Journal  JournalConfig  `yaml:"journal"`
	Watch    WatchConfig    `yaml:"watch"`
}

// PairConfig names the currency pair to analyze.
type PairConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

func (p PairConfig) String() string {
	return p.From + p.To
}

// AnalysisConfig contains the RSI and threshold parameters.
type AnalysisConfig struct {
	Window     int     `yaml:"window"`
	Overbought float64 `yaml:"overbought"`
	Oversold   float64 `yaml:"oversold"`
}

// FetchConfig contains Alpha Vantage fetch parameters. BaseURL is only
// overridden in tests.
type FetchConfig struct {
	APIKey  string `yaml:"api_key,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
	Full    bool   `yaml:"full"`
}

// ReportConfig contains report output parameters.
type ReportConfig struct {
	OutputDir string `yaml:"output_dir"`
	PDFName   string `yaml:"pdf_name"`
	SavePNGs  bool   `yaml:"save_pngs"`
}

// JournalConfig contains journaling parameters.
type JournalConfig struct {
	Type        string `yaml:"type"` // "none", "csv" or "sqlite"
	RunsFile    string `yaml:"runs_file,omitempty"`
	SignalsFile string `yaml:"signals_file,omitempty"`
	DBPath      string `yaml:"db_path,omitempty"`
}

// WatchConfig contains the cron schedule for watch mode (six-field spec,
// seconds first).
type WatchConfig struct {
	Schedule string `yaml:"schedule"`
}

// LoadFromFile loads configuration from a YAML file, applies environment
// overrides and validates the result.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes the configuration as YAML.
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// ApplyEnv overlays environment variables (loading a .env file when present)
// on top of the file configuration.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()
	if v := os.Getenv(APIKeyEnv); v != "" {
		c.Fetch.APIKey = v
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Pair.From) != 3 || len(c.Pair.To) != 3 {
		return fmt.Errorf("pair.from and pair.to must be 3-letter currency codes")
	}
	if c.Analysis.Window <= 0 {
		return fmt.Errorf("analysis.window must be positive")
	}
	if c.Analysis.Oversold < 0 || c.Analysis.Overbought > 100 ||
		c.Analysis.Oversold >= c.Analysis.Overbought {
		return fmt.Errorf("analysis thresholds must satisfy 0 <= oversold < overbought <= 100")
	}
	if c.Report.PDFName == "" {
		return fmt.Errorf("report.pdf_name is required")
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.RunsFile == "" || c.Journal.SignalsFile == "" {
			return fmt.Errorf("journal runs_file and signals_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Pair: PairConfig{
			From: "EUR",
			To:   "USD",
		},
		Analysis: AnalysisConfig{
			Window:     14,
			Overbought: 70,
			Oversold:   30,
		},
		Report: ReportConfig{
			OutputDir: ".",
			PDFName:   "report.pdf",
			SavePNGs:  true,
		},
		Journal: JournalConfig{
			Type: "none",
		},
		Watch: WatchConfig{
			Schedule: "0 0 6 * * *",
		},
	}
}
