package repository

import (
	"context"
	"time"

	"github.com/transit-dashboard/internal/domain"
)

// DashboardCacheRepository caches computed dashboards.
type DashboardCacheRepository interface {
	// GetDashboard returns nil, nil on a cache miss.
	GetDashboard(ctx context.Context, key string) (*domain.Dashboard, error)

	// SetDashboard stores a dashboard under key with a TTL.
	SetDashboard(ctx context.Context, key string, dashboard *domain.Dashboard, ttl time.Duration) error

	// Health checks the backing store.
	Health(ctx context.Context) error
}
