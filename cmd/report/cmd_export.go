package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/transit-dashboard/internal/report"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Write the dashboard for a filter to an XLSX workbook",
	Example: `  report export --day Monday --out monday.xlsx`,
	Args:    cobra.NoArgs,
	RunE:    runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dashboard.xlsx", "output workbook path")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	res, err := buildDashboard(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	if err := report.WriteFile(exportOut, res.Dashboard); err != nil {
		return err
	}

	log.Info("Workbook written", zap.String("path", exportOut), zap.Int("rows", res.Dashboard.TotalRows))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d transactions)\n", exportOut, res.Dashboard.TotalRows)
	return nil
}
