package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/transit-dashboard/internal/domain"
	"github.com/transit-dashboard/internal/domain/repository"
)

type memoryEntry struct {
	dashboard *domain.Dashboard
	expiresAt time.Time
}

type memoryRepository struct {
	entries *lru.Cache[string, memoryEntry]
	now     func() time.Time
}

// NewMemoryRepository keeps up to size dashboards in process. It is used
// when Redis is disabled. Cached dashboards are shared between callers and
// must not be modified.
func NewMemoryRepository(size int) (repository.DashboardCacheRepository, error) {
	return newMemoryRepository(size, time.Now)
}

func newMemoryRepository(size int, now func() time.Time) (*memoryRepository, error) {
	entries, err := lru.New[string, memoryEntry](size)
	if err != nil {
		return nil, fmt.Errorf("create memory cache: %w", err)
	}
	return &memoryRepository{entries: entries, now: now}, nil
}

func (r *memoryRepository) GetDashboard(_ context.Context, key string) (*domain.Dashboard, error) {
	e, ok := r.entries.Get(key)
	if !ok {
		return nil, nil
	}
	if !e.expiresAt.IsZero() && !r.now().Before(e.expiresAt) {
		r.entries.Remove(key)
		return nil, nil
	}
	return e.dashboard, nil
}

// SetDashboard stores d for ttl; a non-positive ttl never expires.
func (r *memoryRepository) SetDashboard(_ context.Context, key string, d *domain.Dashboard, ttl time.Duration) error {
	e := memoryEntry{dashboard: d}
	if ttl > 0 {
		e.expiresAt = r.now().Add(ttl)
	}
	r.entries.Add(key, e)
	return nil
}

func (r *memoryRepository) Health(context.Context) error { return nil }
