package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/fxsignal/pkg/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the report on a cron schedule",
	Long: `Watch keeps the process running and regenerates the report on a cron
schedule (six fields, seconds first), e.g. every day at 06:00 UTC after the
daily FX close:

  fxsignal watch --schedule "0 0 6 * * *"`,
	RunE: runWatch,
}

var watchSchedule string

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchSchedule, "schedule", "", "six-field cron spec (overrides config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	spec := cfg.Watch.Schedule
	if watchSchedule != "" {
		spec = watchSchedule
	}
	if spec == "" {
		return fmt.Errorf("watch schedule is required")
	}

	c := cron.New(cron.WithSeconds())
	_, err = c.AddFunc(spec, func() {
		if err := runPipeline(context.Background(), cfg, ""); err != nil {
			logger.Error("scheduled run failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("register schedule %q: %w", spec, err)
	}

	c.Start()
	logger.Info("watch started", zap.String("schedule", spec))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	c.Stop()
	logger.Info("watch stopped")
	return nil
}
