package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/transit-dashboard/internal/repository/csvfile"
	"github.com/transit-dashboard/internal/repository/postgres"
)

var importCSV string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load the CSV dataset into the Postgres tap record table",
	Long: `Creates the table named by DB_TABLE if needed and inserts every row of the CSV.
Run it once before starting the API with DATASET_SOURCE=postgres.`,
	Example: `  report import --csv dfTransjakarta180kRows.csv`,
	Args:    cobra.NoArgs,
	RunE:    runImport,
}

func init() {
	importCmd.Flags().StringVar(&importCSV, "csv", "", "CSV path (default: DATASET_PATH)")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	path := importCSV
	if path == "" {
		path = cfg.Dataset.Path
	}

	ctx := cmd.Context()
	records, err := csvfile.NewTapRecordRepository(path, log).LoadAll(ctx)
	if err != nil {
		return err
	}

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	repo, err := postgres.NewTapRecordRepository(db, cfg.Database.Table, log)
	if err != nil {
		return err
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	n, err := repo.Import(ctx, records)
	if err != nil {
		return err
	}

	log.Info("Import finished", zap.String("csv", path), zap.String("table", cfg.Database.Table), zap.Int("rows", n))
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d rows into %s\n", n, cfg.Database.Table)
	return nil
}
