package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-dashboard/internal/analytics"
	"github.com/transit-dashboard/internal/domain"
)

func mondayScenario(t *testing.T) []domain.TapRecord {
	t.Helper()
	return analytics.Apply(scenarioRecords(), domain.Filter{Day: "Monday", Corridor: domain.AllCorridors})
}

func TestHourlyCounts(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		counts, err := analytics.HourlyCounts(mondayScenario(t))
		require.NoError(t, err)
		assert.Equal(t, []domain.HourlyCount{{Hour: 10, Count: 2}}, counts)
	})

	t.Run("ascending without zero fill", func(t *testing.T) {
		counts, err := analytics.HourlyCounts(mixedRecords())
		require.NoError(t, err)
		assert.Equal(t, []domain.HourlyCount{
			{Hour: 6, Count: 2},
			{Hour: 7, Count: 3},
			{Hour: 8, Count: 1},
			{Hour: 9, Count: 1},
			{Hour: 17, Count: 2},
		}, counts)
	})

	t.Run("hour derived from tap-in", func(t *testing.T) {
		for _, r := range mixedRecords() {
			assert.Equal(t, r.TapInTime.Hour(), r.Hour)
		}
	})
}

func TestPeakHour(t *testing.T) {
	peak := analytics.PeakHour([]domain.HourlyCount{
		{Hour: 6, Count: 3},
		{Hour: 7, Count: 5},
		{Hour: 17, Count: 5},
	})
	require.NotNil(t, peak)
	assert.Equal(t, domain.HourlyCount{Hour: 7, Count: 5}, *peak)

	assert.Nil(t, analytics.PeakHour(nil))
}

func TestRouteCounts(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		routes, err := analytics.RouteCounts(mondayScenario(t), 10)
		require.NoError(t, err)
		assert.Equal(t, []domain.RouteCount{{Corridor: "CorridorA", Count: 2}}, routes)
	})

	t.Run("sorted descending, missing corridor skipped", func(t *testing.T) {
		routes, err := analytics.RouteCounts(mixedRecords(), 10)
		require.NoError(t, err)
		assert.Equal(t, []domain.RouteCount{
			{Corridor: "1", Count: 4},
			{Corridor: "2", Count: 3},
			{Corridor: "3", Count: 1},
		}, routes)
		for i := 1; i < len(routes); i++ {
			assert.GreaterOrEqual(t, routes[i-1].Count, routes[i].Count)
		}
	})

	t.Run("limit and tie order", func(t *testing.T) {
		var view []domain.TapRecord
		for _, c := range []string{"K", "B", "K", "Z", "B", "A"} {
			view = append(view, tap(0, 8, c, "dki", "Male"))
		}
		routes, err := analytics.RouteCounts(view, 2)
		require.NoError(t, err)
		assert.Equal(t, []domain.RouteCount{
			{Corridor: "K", Count: 2},
			{Corridor: "B", Count: 2},
		}, routes)

		leader := analytics.TopRoute(routes)
		require.NotNil(t, leader)
		assert.Equal(t, "K", leader.Corridor)
	})

	t.Run("twelve corridors keep top ten", func(t *testing.T) {
		var view []domain.TapRecord
		for i := 0; i < 12; i++ {
			for j := 0; j <= i; j++ {
				view = append(view, tap(0, 8, string(rune('a'+i)), "dki", "Male"))
			}
		}
		routes, err := analytics.RouteCounts(view, 10)
		require.NoError(t, err)
		require.Len(t, routes, 10)
		assert.Equal(t, "l", routes[0].Corridor)
		assert.Equal(t, 12, routes[0].Count)
		assert.Equal(t, "c", routes[9].Corridor)
	})
}

func TestLocationMap(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		all := analytics.ValidLocations(scenarioRecords())
		assert.Len(t, all, 2)

		m := analytics.LocationMap(mondayScenario(t), 100)
		assert.Len(t, m.Pairs, 2)
		assert.Equal(t, 2, m.ValidRows)
		require.NotNil(t, m.Center)
		assert.InDelta(t, -6.2, m.Center.Lat, 1e-9)
		assert.InDelta(t, 106.8, m.Center.Lon, 1e-9)
		require.NotNil(t, m.Bounds)
		assert.InDelta(t, -6.3, m.Bounds.MinLat, 1e-9)
		assert.InDelta(t, 106.9, m.Bounds.MaxLon, 1e-9)
		assert.Greater(t, m.Pairs[0].DistanceKm, 0.0)
	})

	t.Run("never includes partial coordinates", func(t *testing.T) {
		partial := tap(0, 9, "1", "dki", "Male")
		partial.TapInStopsLat, partial.TapInStopsLon, partial.TapOutStopsLat = f64(-6.1), f64(106.7), f64(-6.2)
		view := []domain.TapRecord{partial, located(tap(0, 9, "1", "dki", "Male"), -6.1, 106.7, -6.2, 106.8)}

		for _, r := range analytics.ValidLocations(view) {
			assert.True(t, r.HasLocation())
		}
		m := analytics.LocationMap(view, 100)
		assert.Len(t, m.Pairs, 1)
	})

	t.Run("head in table order, center over all valid rows", func(t *testing.T) {
		var view []domain.TapRecord
		for i := 0; i < 5; i++ {
			view = append(view, located(tap(0, 9, "1", "dki", "Male"), float64(i), float64(10*i), 0, 0))
		}
		m := analytics.LocationMap(view, 2)
		require.Len(t, m.Pairs, 2)
		assert.Equal(t, 0.0, m.Pairs[0].TapIn.Lat)
		assert.Equal(t, 1.0, m.Pairs[1].TapIn.Lat)
		assert.Equal(t, 5, m.ValidRows)
		assert.InDelta(t, 2.0, m.Center.Lat, 1e-9)
		assert.InDelta(t, 20.0, m.Center.Lon, 1e-9)
	})

	t.Run("empty", func(t *testing.T) {
		m := analytics.LocationMap(nil, 100)
		assert.Empty(t, m.Pairs)
		assert.Nil(t, m.Center)
		assert.Nil(t, m.Bounds)
	})
}

func TestPaymentCounts(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		counts, err := analytics.PaymentCounts(mondayScenario(t))
		require.NoError(t, err)
		require.Len(t, counts, 2)
		got := map[string]int{}
		for _, c := range counts {
			got[c.Name] = c.Count
		}
		assert.Equal(t, map[string]int{"DKI": 1, "e-Money": 1}, got)
	})

	t.Run("sorted with unknown codes passed through", func(t *testing.T) {
		view := append(mixedRecords(), tap(0, 8, "1", "mandiri", "Male"))
		counts, err := analytics.PaymentCounts(view)
		require.NoError(t, err)

		names := make([]string, 0, len(counts))
		for _, c := range counts {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"DKI", "e-Money", "BRIZZI", "Flazz", "mandiri"}, names)
		assert.Equal(t, 5, counts[0].Count)
		assert.Equal(t, "dki", counts[0].Code)
		assert.Equal(t, "#1f77b4", counts[0].Color)
		assert.Equal(t, analytics.FallbackColor, counts[4].Color)

		assert.Equal(t,
			[]string{"DKI", "e-Money", "BRIZZI", "Flazz", "mandiri"},
			analytics.LegendOrder(counts))
	})

	t.Run("legend order is fixed", func(t *testing.T) {
		counts := []domain.PaymentCount{
			{Name: "Online", Count: 9},
			{Name: "BNI", Count: 5},
			{Name: "DKI", Count: 1},
		}
		assert.Equal(t, []string{"DKI", "BNI", "Online"}, analytics.LegendOrder(counts))
	})
}

func TestRemapBank(t *testing.T) {
	cases := map[string]string{
		"dki":     "DKI",
		"emoney":  "e-Money",
		"bni":     "BNI",
		"brizzi":  "BRIZZI",
		"flazz":   "Flazz",
		"online":  "Online",
		"mandiri": "mandiri",
		"DKI":     "DKI",
		"":        "",
	}
	for in, want := range cases {
		got := analytics.RemapBank(in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, got, analytics.RemapBank(got), "idempotent for %q", in)
	}
}

func TestGenderByHour(t *testing.T) {
	g, err := analytics.GenderByHour(mixedRecords())
	require.NoError(t, err)

	assert.Equal(t, []domain.GenderHourCount{
		{Hour: 6, Sex: "Female", Count: 1},
		{Hour: 6, Sex: "Male", Count: 1},
		{Hour: 7, Sex: "Female", Count: 1},
		{Hour: 7, Sex: "Male", Count: 2},
		{Hour: 8, Sex: "Male", Count: 1},
		{Hour: 9, Sex: "Female", Count: 1},
		{Hour: 17, Sex: "Female", Count: 2},
	}, g.Counts)
	assert.Equal(t, []int{6, 7, 8, 9, 17}, g.Hours)
	assert.Equal(t, []string{"Female", "Male"}, g.Sexes)
	assert.Equal(t, 2, g.MaxCount)
}

func TestGenderByHour_LabelOrderIgnoresRowOrder(t *testing.T) {
	rows := []domain.TapRecord{
		tap(0, 8, "1", "dki", "Male"),
		tap(0, 8, "1", "dki", "Male"),
		tap(0, 8, "1", "dki", "Female"),
		tap(0, 9, "1", "dki", "Female"),
		tap(0, 9, "1", "dki", "Male"),
	}

	g, err := analytics.GenderByHour(rows)
	require.NoError(t, err)

	assert.Equal(t, []string{"Female", "Male"}, g.Sexes)
	assert.Equal(t, []domain.GenderHourCount{
		{Hour: 8, Sex: "Female", Count: 1},
		{Hour: 8, Sex: "Male", Count: 2},
		{Hour: 9, Sex: "Female", Count: 1},
		{Hour: 9, Sex: "Male", Count: 1},
	}, g.Counts)
	assert.Equal(t, []domain.GenderHourCount{{Hour: 8, Sex: "Female", Count: 1}, {Hour: 8, Sex: "Male", Count: 2}}, g.Frame(8))
}

func TestSummarize(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		filter := domain.Filter{Day: "Monday"}
		d, err := analytics.Summarize(analytics.Apply(scenarioRecords(), filter), filter, analytics.DefaultLimits)
		require.NoError(t, err)

		assert.False(t, d.Empty)
		assert.Equal(t, 2, d.TotalRows)
		assert.Equal(t, domain.AllCorridors, d.Filter.Corridor)
		require.NotNil(t, d.Hourly.Peak)
		assert.Equal(t, 10, d.Hourly.Peak.Hour)
		assert.Equal(t, 2, d.Hourly.Peak.Count)
		require.NotNil(t, d.Routes.Leader)
		assert.Equal(t, "CorridorA", d.Routes.Leader.Corridor)
		assert.Len(t, d.Locations.Pairs, 2)
		assert.Len(t, d.Payments.Counts, 2)
	})

	t.Run("empty view is a defined no-data state", func(t *testing.T) {
		filter := domain.Filter{Day: "Sunday"}
		d, err := analytics.Summarize(analytics.Apply(scenarioRecords(), filter), filter, analytics.DefaultLimits)
		require.NoError(t, err)

		assert.True(t, d.Empty)
		assert.Equal(t, 0, d.TotalRows)
		assert.Nil(t, d.Hourly.Peak)
		assert.Empty(t, d.Hourly.Counts)
		assert.Nil(t, d.Routes.Leader)
		assert.Empty(t, d.Routes.Top)
		assert.Nil(t, d.Locations.Center)
		assert.Empty(t, d.Payments.Counts)
		assert.Empty(t, d.Gender.Counts)
		assert.Equal(t, 0, d.Gender.MaxCount)
	})
}
