package analytics

import (
	"sort"

	"github.com/transit-dashboard/internal/domain"
)

// HourlyCounts counts taps per hour present in view, ascending by hour.
// Absent hours are not zero-filled.
func HourlyCounts(view []domain.TapRecord) ([]domain.HourlyCount, error) {
	hours := make([]int, len(view))
	for i, r := range view {
		hours[i] = r.Hour
	}

	groups, err := countBy(len(view), keyColumn{name: "hour", values: hours})
	if err != nil {
		return nil, err
	}

	out := make([]domain.HourlyCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, domain.HourlyCount{Hour: g.key[0], Count: g.count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out, nil
}

// PeakHour returns the bucket with the highest count; ties go to the earliest
// hour. Nil when counts is empty.
func PeakHour(counts []domain.HourlyCount) *domain.HourlyCount {
	var peak *domain.HourlyCount
	for i := range counts {
		if peak == nil || counts[i].Count > peak.Count {
			c := counts[i]
			peak = &c
		}
	}
	return peak
}

// HourlyTrend bundles the counts and their peak.
func HourlyTrend(view []domain.TapRecord) (domain.HourlyTrend, error) {
	counts, err := HourlyCounts(view)
	if err != nil {
		return domain.HourlyTrend{}, err
	}
	return domain.HourlyTrend{
		Counts: nonNil(counts),
		Peak:   PeakHour(counts),
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
