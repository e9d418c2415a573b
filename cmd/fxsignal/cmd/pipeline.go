package cmd

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/fxsignal/alphavantage"
	"github.com/rustyeddy/fxsignal/analysis"
	"github.com/rustyeddy/fxsignal/config"
	"github.com/rustyeddy/fxsignal/journal"
	"github.com/rustyeddy/fxsignal/market"
	"github.com/rustyeddy/fxsignal/pkg/id"
	"github.com/rustyeddy/fxsignal/pkg/logger"
	"github.com/rustyeddy/fxsignal/report"
	"github.com/rustyeddy/fxsignal/signals"
)

// runPipeline executes one fetch -> analyze -> report -> journal cycle.
// When input is non-empty the series is read from disk instead of fetched.
func runPipeline(ctx context.Context, cfg *config.Config, input string) error {
	pair := cfg.Pair.String()

	raw, err := fetchRaw(ctx, cfg, input)
	if err != nil {
		return err
	}

	res, err := analysis.Run(raw, analysis.Config{
		Pair:       pair,
		Window:     cfg.Analysis.Window,
		Overbought: cfg.Analysis.Overbought,
		Oversold:   cfg.Analysis.Oversold,
	})
	if err != nil {
		return fmt.Errorf("analyze %s: %w", pair, err)
	}

	b := report.Builder{
		OutputDir: cfg.Report.OutputDir,
		PDFName:   cfg.Report.PDFName,
		SavePNGs:  cfg.Report.SavePNGs,
	}
	path, err := b.Build(res)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	logger.Info("report written",
		zap.String("pair", pair),
		zap.String("path", path),
		zap.Int("days", len(res.Rows)))

	return journalRun(cfg, res)
}

func fetchRaw(ctx context.Context, cfg *config.Config, input string) (market.RawSeries, error) {
	if input != "" {
		logger.Info("reading cached series", zap.String("path", input))
		return alphavantage.ReadSeriesFile(input)
	}

	if cfg.Fetch.APIKey == "" {
		return nil, fmt.Errorf("no API key: set fetch.api_key or %s", config.APIKeyEnv)
	}

	base := cfg.Fetch.BaseURL
	if base == "" {
		base = alphavantage.DefaultBaseURL
	}

	logger.Info("fetching daily series",
		zap.String("from", cfg.Pair.From),
		zap.String("to", cfg.Pair.To),
		zap.Bool("full", cfg.Fetch.Full))

	client := alphavantage.NewClientWithBaseURL(cfg.Fetch.APIKey, base)
	return client.FXDaily(ctx, cfg.Pair.From, cfg.Pair.To, cfg.Fetch.Full)
}

func journalRun(cfg *config.Config, res *analysis.Result) error {
	j, err := openJournal(cfg.Journal)
	if err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	defer j.Close()

	runID := id.New()
	err = j.RecordRun(journal.RunRecord{
		RunID:     runID,
		Pair:      res.Pair,
		Window:    res.Window,
		Start:     res.Start(),
		End:       res.End(),
		Points:    len(res.Rows),
		Generated: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	for _, row := range res.Rows {
		if row.Signal == signals.Neutral {
			continue
		}
		err := j.RecordSignal(journal.SignalRecord{
			RunID:  runID,
			Date:   row.Date,
			Close:  row.Close,
			RSI:    row.RSI,
			Signal: row.Signal,
		})
		if err != nil {
			return fmt.Errorf("record signal: %w", err)
		}
	}

	return nil
}

func openJournal(jc config.JournalConfig) (journal.Journal, error) {
	switch jc.Type {
	case "", "none":
		return journal.Noop{}, nil
	case "csv":
		return journal.NewCSV(jc.RunsFile, jc.SignalsFile)
	case "sqlite":
		return journal.NewSQLite(jc.DBPath)
	default:
		return nil, fmt.Errorf("unknown journal type %q", jc.Type)
	}
}
