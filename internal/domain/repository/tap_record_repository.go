package repository

import (
	"context"

	"github.com/transit-dashboard/internal/domain"
)

// TapRecordRepository is a read-once source of tap records.
type TapRecordRepository interface {
	// LoadAll returns every record with derived fields filled.
	LoadAll(ctx context.Context) ([]domain.TapRecord, error)

	// Source describes where the records come from, for logs and metadata.
	Source() string
}
