// Package dataset performs the one-time load of the tap record table.
package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/transit-dashboard/internal/domain"
	"github.com/transit-dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

// Load reads every record from repo and returns the immutable dataset handle.
// It is called once at startup; the result is passed by reference to the
// components that need it.
func Load(ctx context.Context, repo repository.TapRecordRepository, logger *zap.Logger) (*domain.Dataset, error) {
	start := time.Now()
	logger.Info("Loading dataset", zap.String("source", repo.Source()))

	records, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset from %s: %w", repo.Source(), err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("load dataset from %s: no records", repo.Source())
	}

	ds := domain.NewDataset(records, repo.Source())
	logger.Info("Dataset loaded",
		zap.Int("rows", ds.Len()),
		zap.Strings("days", ds.Days()),
		zap.Int("corridors", len(ds.Corridors())),
		zap.Int("banks", len(ds.Banks())),
		zap.String("fingerprint", ds.Fingerprint()),
		zap.Duration("took", time.Since(start)),
	)
	return ds, nil
}
