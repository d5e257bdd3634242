package charts_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-dashboard/internal/charts"
	"github.com/transit-dashboard/internal/domain"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func hourly() domain.HourlyTrend {
	return domain.HourlyTrend{
		Counts: []domain.HourlyCount{{Hour: 6, Count: 12}, {Hour: 7, Count: 30}, {Hour: 17, Count: 21}},
		Peak:   &domain.HourlyCount{Hour: 7, Count: 30},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := charts.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, charts.FormatSVG, f)
	assert.Equal(t, "image/svg+xml", f.ContentType())

	f, err = charts.ParseFormat("PNG")
	require.NoError(t, err)
	assert.Equal(t, charts.FormatPNG, f)
	assert.Equal(t, "image/png", f.ContentType())

	_, err = charts.ParseFormat("gif")
	assert.Error(t, err)
}

func TestRenderHourly(t *testing.T) {
	t.Run("svg", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, charts.RenderHourly(&buf, hourly(), charts.FormatSVG))
		assert.Contains(t, buf.String(), "<svg")
		assert.Contains(t, buf.String(), "Peak: 30 transactions")
	})

	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, charts.RenderHourly(&buf, hourly(), charts.FormatPNG))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
	})

	t.Run("single hour", func(t *testing.T) {
		h := domain.HourlyTrend{
			Counts: []domain.HourlyCount{{Hour: 10, Count: 2}},
			Peak:   &domain.HourlyCount{Hour: 10, Count: 2},
		}
		var buf bytes.Buffer
		assert.NoError(t, charts.RenderHourly(&buf, h, charts.FormatSVG))
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		assert.ErrorIs(t, charts.RenderHourly(&buf, domain.HourlyTrend{}, charts.FormatSVG), charts.ErrNoData)
		assert.Zero(t, buf.Len())
	})
}

func TestRenderRoutes(t *testing.T) {
	r := domain.RouteRanking{
		Top:    []domain.RouteCount{{Corridor: "1", Count: 9}, {Corridor: "9A", Count: 4}},
		Leader: &domain.RouteCount{Corridor: "1", Count: 9},
	}

	var buf bytes.Buffer
	require.NoError(t, charts.RenderRoutes(&buf, r, charts.FormatSVG))
	assert.Contains(t, buf.String(), "9A")

	single := domain.RouteRanking{Top: r.Top[:1], Leader: r.Leader}
	buf.Reset()
	assert.NoError(t, charts.RenderRoutes(&buf, single, charts.FormatSVG))

	assert.ErrorIs(t, charts.RenderRoutes(&buf, domain.RouteRanking{}, charts.FormatSVG), charts.ErrNoData)
}

func TestRenderPayments(t *testing.T) {
	p := domain.PaymentDistribution{
		Counts: []domain.PaymentCount{
			{Code: "dki", Name: "DKI", Count: 3},
			{Code: "emoney", Name: "e-Money", Count: 1},
		},
		LegendOrder: []string{"DKI", "e-Money"},
	}

	var buf bytes.Buffer
	require.NoError(t, charts.RenderPayments(&buf, p, charts.FormatSVG))
	assert.Contains(t, buf.String(), "DKI (75.0%)")

	assert.ErrorIs(t, charts.RenderPayments(&buf, domain.PaymentDistribution{}, charts.FormatSVG), charts.ErrNoData)
}

func TestRenderGenderFrame(t *testing.T) {
	g := domain.GenderByHour{
		Counts: []domain.GenderHourCount{
			{Hour: 6, Sex: "Male", Count: 5},
			{Hour: 6, Sex: "Female", Count: 2},
			{Hour: 7, Sex: "Female", Count: 8},
		},
		Hours:    []int{6, 7},
		Sexes:    []string{"Male", "Female"},
		MaxCount: 8,
	}

	var buf bytes.Buffer
	require.NoError(t, charts.RenderGenderFrame(&buf, g, 6, charts.FormatSVG))
	assert.Contains(t, buf.String(), "06:00")

	buf.Reset()
	require.NoError(t, charts.RenderGenderFrame(&buf, g, 7, charts.FormatPNG))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	assert.ErrorIs(t, charts.RenderGenderFrame(&buf, domain.GenderByHour{}, 6, charts.FormatSVG), charts.ErrNoData)
}
