package cache

import (
	"context"
	"time"

	"github.com/transit-dashboard/internal/domain"
	"github.com/transit-dashboard/internal/domain/repository"
)

type noopRepository struct{}

// NewNoopRepository never stores anything; one-shot commands use it.
func NewNoopRepository() repository.DashboardCacheRepository {
	return noopRepository{}
}

func (noopRepository) GetDashboard(context.Context, string) (*domain.Dashboard, error) {
	return nil, nil
}

func (noopRepository) SetDashboard(context.Context, string, *domain.Dashboard, time.Duration) error {
	return nil
}

func (noopRepository) Health(context.Context) error { return nil }
