package narrative_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-dashboard/internal/domain"
	"github.com/transit-dashboard/internal/narrative"
)

func dashboard() *domain.Dashboard {
	return &domain.Dashboard{
		Filter:    domain.Filter{Day: "Monday", Corridor: domain.AllCorridors},
		TotalRows: 12,
		Hourly: domain.HourlyTrend{
			Counts: []domain.HourlyCount{{Hour: 7, Count: 8}, {Hour: 17, Count: 4}},
			Peak:   &domain.HourlyCount{Hour: 7, Count: 8},
		},
		Routes: domain.RouteRanking{
			Top:    []domain.RouteCount{{Corridor: "1", Count: 9}, {Corridor: "2", Count: 3}},
			Leader: &domain.RouteCount{Corridor: "1", Count: 9},
		},
		Payments: domain.PaymentDistribution{
			Counts: []domain.PaymentCount{
				{Code: "dki", Name: "DKI", Count: 6},
				{Code: "emoney", Name: "e-Money", Count: 4},
				{Code: "flazz", Name: "Flazz", Count: 2},
			},
		},
	}
}

func TestBuild(t *testing.T) {
	n, err := narrative.Build(dashboard())
	require.NoError(t, err)

	assert.Equal(t, "Transactions peak at 07:00 with 8 transactions.", n.PeakHour)
	assert.Equal(t, "Corridor 1 is the most used corridor with 9 transactions.", n.TopRoute)
	assert.Equal(t, "DKI is the dominant payment method with 6 transactions.", n.DominantMethod)
	assert.Equal(t, "Other payment methods such as e-Money and Flazz follow with 4 and 2 transactions.", n.OtherMethods)
	assert.Contains(t, n.Recommendation, "07:00")
	assert.Contains(t, n.Recommendation, "corridor 1")

	assert.Contains(t, n.Text, "Key findings for Monday:")
	assert.Contains(t, n.Text, n.PeakHour)
	assert.Contains(t, n.Text, n.OtherMethods)
	assert.NotContains(t, n.Text, "ALL")
}

func TestBuild_SingleOtherMethod(t *testing.T) {
	d := dashboard()
	d.Filter.Corridor = "2"
	d.Payments.Counts = d.Payments.Counts[:2]

	n, err := narrative.Build(d)
	require.NoError(t, err)

	assert.Equal(t, "The only other payment method, e-Money, accounts for 4 transactions.", n.OtherMethods)
	assert.Contains(t, n.Text, "on corridor 2")
}

func TestBuild_OnlyDominantMethod(t *testing.T) {
	d := dashboard()
	d.Payments.Counts = d.Payments.Counts[:1]

	n, err := narrative.Build(d)
	require.NoError(t, err)
	assert.Equal(t, "There is no data for other payment methods.", n.OtherMethods)
}

func TestBuild_EmptyDashboard(t *testing.T) {
	d := &domain.Dashboard{Filter: domain.Filter{Day: "Sunday", Corridor: domain.AllCorridors}, Empty: true}

	n, err := narrative.Build(d)
	require.NoError(t, err)

	assert.Contains(t, n.PeakHour, "no peak hour")
	assert.Equal(t, "No corridor data is available for the selected filters.", n.TopRoute)
	assert.Equal(t, "Payment method data is not available.", n.DominantMethod)
	assert.Equal(t, "There is no data for other payment methods.", n.OtherMethods)
	assert.Equal(t, "Widen the filters to get a recommendation.", n.Recommendation)
	assert.NotEmpty(t, n.Text)
}

func TestFormatHour(t *testing.T) {
	assert.Equal(t, "07:00", narrative.FormatHour(7))
	assert.Equal(t, "17:00", narrative.FormatHour(17))
	assert.Equal(t, "00:00", narrative.FormatHour(0))
}
