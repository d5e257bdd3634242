package analytics

import (
	"fmt"

	"github.com/transit-dashboard/internal/domain"
)

// Limits caps the ranked and sampled aggregates.
type Limits struct {
	RouteLimit int
	MapLimit   int
}

// DefaultLimits are the dashboard defaults: top 10 corridors, 100 map rows.
var DefaultLimits = Limits{RouteLimit: 10, MapLimit: 100}

// Summarize runs every aggregator over view. An empty view yields a
// dashboard with Empty set and nil peak, leader and center.
func Summarize(view []domain.TapRecord, filter domain.Filter, limits Limits) (*domain.Dashboard, error) {
	d := &domain.Dashboard{
		Filter:    filter.Normalized(),
		TotalRows: len(view),
		Empty:     len(view) == 0,
	}

	var err error
	if d.Hourly, err = HourlyTrend(view); err != nil {
		return nil, fmt.Errorf("hourly counts: %w", err)
	}
	if d.Routes, err = RouteRanking(view, limits.RouteLimit); err != nil {
		return nil, fmt.Errorf("route counts: %w", err)
	}
	d.Locations = LocationMap(view, limits.MapLimit)
	if d.Payments, err = PaymentDistribution(view); err != nil {
		return nil, fmt.Errorf("payment counts: %w", err)
	}
	if d.Gender, err = GenderByHour(view); err != nil {
		return nil, fmt.Errorf("gender counts: %w", err)
	}

	return d, nil
}
