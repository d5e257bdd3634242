package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/transit-dashboard/internal/domain"
	"github.com/transit-dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

const dashboardKeyPrefix = "dashboard:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.DashboardCacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) GetDashboard(ctx context.Context, key string) (*domain.Dashboard, error) {
	data, err := r.get(ctx, dashboardKeyPrefix+key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var dashboard domain.Dashboard
	if err := json.Unmarshal(data, &dashboard); err != nil {
		r.logger.Error("Failed to unmarshal dashboard from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal dashboard: %w", err)
	}

	return &dashboard, nil
}

func (r *cacheRepository) SetDashboard(ctx context.Context, key string, dashboard *domain.Dashboard, ttl time.Duration) error {
	data, err := json.Marshal(dashboard)
	if err != nil {
		r.logger.Error("Failed to marshal dashboard", zap.Error(err))
		return fmt.Errorf("marshal dashboard: %w", err)
	}

	return r.set(ctx, dashboardKeyPrefix+key, data, ttl)
}

func (r *cacheRepository) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
