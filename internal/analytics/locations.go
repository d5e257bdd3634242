package analytics

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/transit-dashboard/internal/domain"
	"github.com/transit-dashboard/internal/pkg/utils"
)

// ValidLocations returns rows with all four coordinates, in table order.
func ValidLocations(view []domain.TapRecord) []domain.TapRecord {
	out := make([]domain.TapRecord, 0)
	for _, r := range view {
		if r.HasLocation() {
			out = append(out, r)
		}
	}
	return out
}

// MapCenter is the mean tap-in position over valid rows, nil when none.
func MapCenter(valid []domain.TapRecord) *domain.Point {
	if len(valid) == 0 {
		return nil
	}
	mp := make(orb.MultiPoint, 0, len(valid))
	for _, r := range valid {
		mp = append(mp, orb.Point{*r.TapInStopsLon, *r.TapInStopsLat})
	}
	c, _ := planar.CentroidArea(mp)
	return &domain.Point{Lat: c.Lat(), Lon: c.Lon()}
}

// MapBounds covers every tap-in and tap-out point of valid rows, nil when none.
func MapBounds(valid []domain.TapRecord) *domain.BoundingBox {
	if len(valid) == 0 {
		return nil
	}
	mp := make(orb.MultiPoint, 0, 2*len(valid))
	for _, r := range valid {
		mp = append(mp,
			orb.Point{*r.TapInStopsLon, *r.TapInStopsLat},
			orb.Point{*r.TapOutStopsLon, *r.TapOutStopsLat},
		)
	}
	b := mp.Bound()
	return &domain.BoundingBox{
		MinLat: b.Min.Lat(),
		MinLon: b.Min.Lon(),
		MaxLat: b.Max.Lat(),
		MaxLon: b.Max.Lon(),
	}
}

// LocationMap takes the first limit valid rows as marker pairs; center and
// bounds use every valid row.
func LocationMap(view []domain.TapRecord, limit int) domain.LocationMap {
	valid := ValidLocations(view)

	head := valid
	if limit > 0 && len(head) > limit {
		head = head[:limit]
	}

	pairs := make([]domain.LocationPair, 0, len(head))
	for _, r := range head {
		in := domain.Point{Lat: *r.TapInStopsLat, Lon: *r.TapInStopsLon}
		out := domain.Point{Lat: *r.TapOutStopsLat, Lon: *r.TapOutStopsLon}
		pairs = append(pairs, domain.LocationPair{
			TapIn:      in,
			TapOut:     out,
			Corridor:   r.CorridorName,
			DistanceKm: utils.RoundTo(utils.HaversineDistance(in.Lat, in.Lon, out.Lat, out.Lon), 3),
		})
	}

	return domain.LocationMap{
		Pairs:     pairs,
		ValidRows: len(valid),
		Center:    MapCenter(valid),
		Bounds:    MapBounds(valid),
	}
}
