package analytics

import (
	"sort"

	"github.com/transit-dashboard/internal/domain"
)

// RouteCounts counts taps per corridor, sorted by count descending and cut to
// limit (limit <= 0 keeps all). Rows without a corridor are skipped. Equal
// counts keep first-appearance order.
func RouteCounts(view []domain.TapRecord, limit int) ([]domain.RouteCount, error) {
	book := newCodebook()
	codes := make([]int, 0, len(view))
	for _, r := range view {
		if r.CorridorName == "" {
			continue
		}
		codes = append(codes, book.code(r.CorridorName))
	}

	groups, err := countBy(len(codes), keyColumn{name: "corridor", values: codes})
	if err != nil {
		return nil, err
	}
	sortByCountDesc(groups)

	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}

	out := make([]domain.RouteCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, domain.RouteCount{Corridor: book.value(g.key[0]), Count: g.count})
	}
	return out, nil
}

// TopRoute is the first entry of a sorted ranking, nil when empty.
func TopRoute(ranked []domain.RouteCount) *domain.RouteCount {
	if len(ranked) == 0 {
		return nil
	}
	top := ranked[0]
	return &top
}

// RouteRanking bundles the top corridors and the leader.
func RouteRanking(view []domain.TapRecord, limit int) (domain.RouteRanking, error) {
	top, err := RouteCounts(view, limit)
	if err != nil {
		return domain.RouteRanking{}, err
	}
	return domain.RouteRanking{
		Top:    nonNil(top),
		Leader: TopRoute(top),
	}, nil
}

// sortByCountDesc orders single-key groups by count, then by code.
func sortByCountDesc(groups []groupCount) {
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].key[0] < groups[j].key[0]
	})
}
