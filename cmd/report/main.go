// Command report runs the dashboard pipeline from the command line: print a
// summary, export a workbook, or seed Postgres from the CSV.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/transit-dashboard/internal/analytics"
	"github.com/transit-dashboard/internal/config"
	"github.com/transit-dashboard/internal/dataset"
	"github.com/transit-dashboard/internal/pkg/logger"
	"github.com/transit-dashboard/internal/repository/cache"
	"github.com/transit-dashboard/internal/usecase"
	"github.com/transit-dashboard/internal/usecase/dto"
)

var (
	envFile  string
	logLevel string

	day      string
	corridor string
	banks    []string
)

var rootCmd = &cobra.Command{
	Use:           "report",
	Short:         "Transit ridership reports",
	Long:          `Runs the dashboard filters and aggregates over the configured dataset without starting the HTTP server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "env file with configuration (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL")

	for _, c := range []*cobra.Command{summaryCmd, exportCmd} {
		c.Flags().StringVar(&day, "day", "", "weekday name (default: first day in the data)")
		c.Flags().StringVar(&corridor, "corridor", "ALL", "corridor name or ALL")
		c.Flags().StringSliceVar(&banks, "bank", nil, "bank code, repeatable")
	}

	rootCmd.AddCommand(summaryCmd, exportCmd, importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads config and logger for a subcommand.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadFile(envFile)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	log, err := logger.New(level, cfg.Server.Env)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

// buildDashboard loads the dataset and computes the dashboard for the flags.
func buildDashboard(ctx context.Context, cfg *config.Config, log *zap.Logger) (*dto.DashboardResult, error) {
	repo, closeRepo, err := dataset.OpenRepository(cfg, log)
	if err != nil {
		return nil, err
	}
	defer closeRepo()

	ds, err := dataset.Load(ctx, repo, log)
	if err != nil {
		return nil, err
	}

	uc := usecase.NewDashboardUseCase(ds, cache.NewNoopRepository(), log, time.Minute, analytics.Limits{
		RouteLimit: cfg.Dashboard.RouteLimit,
		MapLimit:   cfg.Dashboard.MapLimit,
	})
	return uc.GetDashboard(ctx, dto.DashboardRequest{Day: day, Corridor: corridor, Banks: banks})
}
