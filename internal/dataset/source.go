package dataset

import (
	"fmt"

	"github.com/transit-dashboard/internal/config"
	"github.com/transit-dashboard/internal/domain/repository"
	"github.com/transit-dashboard/internal/repository/csvfile"
	"github.com/transit-dashboard/internal/repository/postgres"
	"go.uber.org/zap"
)

// OpenRepository selects the record source named by DATASET_SOURCE. The
// returned close func releases the database connection, if any.
func OpenRepository(cfg *config.Config, logger *zap.Logger) (repository.TapRecordRepository, func() error, error) {
	switch cfg.Dataset.Source {
	case config.DatasetSourceCSV:
		return csvfile.NewTapRecordRepository(cfg.Dataset.Path, logger), func() error { return nil }, nil

	case config.DatasetSourcePostgres:
		db, err := postgres.New(&cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		repo, err := postgres.NewTapRecordRepository(db, cfg.Database.Table, logger)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repo, db.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
}
