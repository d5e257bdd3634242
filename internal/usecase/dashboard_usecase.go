package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/transit-dashboard/internal/analytics"
	"github.com/transit-dashboard/internal/domain"
	"github.com/transit-dashboard/internal/domain/repository"
	"github.com/transit-dashboard/internal/narrative"
	"github.com/transit-dashboard/internal/pkg/errors"
	"github.com/transit-dashboard/internal/pkg/validator"
	"github.com/transit-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

// DashboardUseCase runs the filter and aggregation pipeline over the loaded dataset.
type DashboardUseCase struct {
	dataset   *domain.Dataset
	cacheRepo repository.DashboardCacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
	limits    analytics.Limits
}

// NewDashboardUseCase creates a DashboardUseCase over a loaded dataset.
func NewDashboardUseCase(
	dataset *domain.Dataset,
	cacheRepo repository.DashboardCacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
	limits analytics.Limits,
) *DashboardUseCase {
	return &DashboardUseCase{
		dataset:   dataset,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
		limits:    limits,
	}
}

// GetFilterOptions returns the values offered by the three filter controls.
func (uc *DashboardUseCase) GetFilterOptions() (*dto.FilterOptionsResponse, error) {
	if uc.dataset == nil {
		return nil, errors.ErrDatasetUnavailable
	}
	return &dto.FilterOptionsResponse{
		Days:       uc.dataset.Days(),
		DefaultDay: uc.dataset.DefaultDay(),
		Corridors:  append([]string{domain.AllCorridors}, uc.dataset.Corridors()...),
		Banks:      uc.dataset.Banks(),
	}, nil
}

// GetDatasetInfo describes the loaded table.
func (uc *DashboardUseCase) GetDatasetInfo() (*dto.DatasetInfo, error) {
	if uc.dataset == nil {
		return nil, errors.ErrDatasetUnavailable
	}
	return &dto.DatasetInfo{
		Source:      uc.dataset.Source(),
		Rows:        uc.dataset.Len(),
		Fingerprint: uc.dataset.Fingerprint(),
		LoadedAt:    uc.dataset.LoadedAt().UTC().Format(time.RFC3339),
	}, nil
}

// ResolveFilter validates req and defaults the day to the first weekday in
// the data.
func (uc *DashboardUseCase) ResolveFilter(req dto.DashboardRequest) (domain.Filter, error) {
	if uc.dataset == nil {
		return domain.Filter{}, errors.ErrDatasetUnavailable
	}
	if err := validator.Validate(req); err != nil {
		details := validator.FieldErrors(err)
		if _, ok := details["Day"]; ok {
			return domain.Filter{}, errors.ErrInvalidDay.WithDetails(details)
		}
		return domain.Filter{}, errors.ErrInvalidRequest.WithDetails(details)
	}

	f := req.Filter()
	if f.Day == "" {
		f.Day = uc.dataset.DefaultDay()
	}
	return f, nil
}

// GetDashboard computes every aggregate and the narrative for the filter in
// req, using the cache when possible. An empty filtered view is not an error:
// the dashboard comes back with Empty set.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, req dto.DashboardRequest) (*dto.DashboardResult, error) {
	filter, err := uc.ResolveFilter(req)
	if err != nil {
		return nil, err
	}

	key := uc.cacheKey(filter)

	// 1. Check cache
	cached, err := uc.cacheRepo.GetDashboard(ctx, key)
	if err != nil {
		uc.logger.Warn("Failed to get dashboard from cache", zap.String("key", key), zap.Error(err))
	} else if cached != nil {
		uc.logger.Debug("Dashboard fetched from cache", zap.String("key", key))
		return &dto.DashboardResult{Dashboard: cached, Cached: true}, nil
	}

	// 2. Compute from the dataset
	d, err := uc.Compute(filter)
	if err != nil {
		return nil, err
	}

	// 3. Cache; a failure here does not fail the request
	if err := uc.cacheRepo.SetDashboard(ctx, key, d, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache dashboard", zap.String("key", key), zap.Error(err))
	}

	return &dto.DashboardResult{Dashboard: d}, nil
}

// Compute runs the pipeline for an already resolved filter, bypassing the cache.
func (uc *DashboardUseCase) Compute(filter domain.Filter) (*domain.Dashboard, error) {
	if uc.dataset == nil {
		return nil, errors.ErrDatasetUnavailable
	}

	start := time.Now()
	view := analytics.Apply(uc.dataset.Records(), filter)

	d, err := analytics.Summarize(view, filter, uc.limits)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", filter.Key(), err)
	}

	n, err := narrative.Build(d)
	if err != nil {
		return nil, fmt.Errorf("build narrative: %w", err)
	}
	d.Narrative = n

	uc.logger.Debug("Dashboard computed",
		zap.String("filter", filter.Key()),
		zap.Int("rows", d.TotalRows),
		zap.Bool("empty", d.Empty),
		zap.Duration("took", time.Since(start)),
	)
	return d, nil
}

func (uc *DashboardUseCase) cacheKey(f domain.Filter) string {
	return uc.dataset.Fingerprint() + ":" + f.Key()
}

// CacheHealth pings the dashboard cache.
func (uc *DashboardUseCase) CacheHealth(ctx context.Context) error {
	return uc.cacheRepo.Health(ctx)
}
