package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-dashboard/internal/domain"
	"github.com/transit-dashboard/internal/repository/cache"
)

func TestMemoryRepository_Dashboard(t *testing.T) {
	repo, err := cache.NewMemoryRepository(8)
	require.NoError(t, err)
	ctx := context.Background()

	miss, err := repo.GetDashboard(ctx, "fp:Monday|ALL|")
	require.NoError(t, err)
	assert.Nil(t, miss)

	d := &domain.Dashboard{Filter: domain.Filter{Day: "Monday", Corridor: "ALL"}, TotalRows: 2}
	require.NoError(t, repo.SetDashboard(ctx, "fp:Monday|ALL|", d, time.Hour))

	hit, err := repo.GetDashboard(ctx, "fp:Monday|ALL|")
	require.NoError(t, err)
	assert.Same(t, d, hit)
	assert.NoError(t, repo.Health(ctx))
}

func TestMemoryRepository_EvictsLeastRecentlyUsed(t *testing.T) {
	repo, err := cache.NewMemoryRepository(2)
	require.NoError(t, err)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.SetDashboard(ctx, fmt.Sprintf("k%d", i), &domain.Dashboard{TotalRows: i}, time.Hour))
	}

	first, err := repo.GetDashboard(ctx, "k0")
	require.NoError(t, err)
	assert.Nil(t, first)

	last, err := repo.GetDashboard(ctx, "k2")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, 2, last.TotalRows)
}

func TestNewMemoryRepository_InvalidSize(t *testing.T) {
	_, err := cache.NewMemoryRepository(0)
	assert.Error(t, err)
}
