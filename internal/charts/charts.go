// Package charts renders dashboard aggregates as SVG or PNG images.
package charts

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/transit-dashboard/internal/analytics"
	"github.com/transit-dashboard/internal/domain"
	"github.com/transit-dashboard/internal/narrative"
)

// Format selects the output encoding.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

const (
	width  = 960
	height = 480
)

// ErrNoData is returned for an aggregate with nothing to plot.
var ErrNoData = errors.New("charts: no data to plot")

// ParseFormat maps a query value to a Format; empty means SVG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	}
	return "", fmt.Errorf("charts: unknown format %q", s)
}

// ContentType is the HTTP media type of f.
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) renderer() chart.RendererProvider {
	if f == FormatPNG {
		return chart.PNG
	}
	return chart.SVG
}

// color parses "#rrggbb".
func color(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// ceiling leaves headroom above the tallest value so labels fit.
func ceiling(max int) float64 {
	if max <= 0 {
		return 1
	}
	return math.Ceil(float64(max) * 1.15)
}

// RenderHourly draws the hourly trend as an area chart with the peak annotated.
func RenderHourly(w io.Writer, h domain.HourlyTrend, f Format) error {
	if len(h.Counts) == 0 || h.Peak == nil {
		return ErrNoData
	}

	xs := make([]float64, 0, len(h.Counts))
	ys := make([]float64, 0, len(h.Counts))
	for _, c := range h.Counts {
		xs = append(xs, float64(c.Hour))
		ys = append(ys, float64(c.Count))
	}

	ticks := make([]chart.Tick, 0, 9)
	for hour := 0; hour <= 24; hour += 3 {
		ticks = append(ticks, chart.Tick{Value: float64(hour), Label: narrative.FormatHour(hour % 24)})
	}

	base := color(analytics.HourlyColor)
	ch := chart.Chart{
		Title:      "Transactions per hour",
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  "Hour",
			Range: &chart.ContinuousRange{Min: 0, Max: 24},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:  "Transactions",
			Range: &chart.ContinuousRange{Min: 0, Max: ceiling(h.Peak.Count)},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Transactions",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: base,
					StrokeWidth: 2,
					FillColor:   base.WithAlpha(64),
				},
			},
			chart.AnnotationSeries{
				Annotations: []chart.Value2{{
					XValue: float64(h.Peak.Hour),
					YValue: float64(h.Peak.Count),
					Label:  fmt.Sprintf("Peak: %d transactions", h.Peak.Count),
				}},
			},
		},
	}
	return ch.Render(f.renderer(), w)
}

// RenderRoutes draws the corridor ranking as bars in rank order.
func RenderRoutes(w io.Writer, r domain.RouteRanking, f Format) error {
	if len(r.Top) == 0 || r.Leader == nil {
		return ErrNoData
	}

	bars := make([]chart.Value, 0, len(r.Top))
	for i, rc := range r.Top {
		bars = append(bars, chart.Value{
			Label: rc.Corridor,
			Value: float64(rc.Count),
			Style: chart.Style{
				FillColor:   color(analytics.RouteColor(i)),
				StrokeColor: color(analytics.RouteColor(i)),
			},
		})
	}

	bc := chart.BarChart{
		Title:      fmt.Sprintf("Top %d corridors (most used: %s, %d)", len(r.Top), r.Leader.Corridor, r.Leader.Count),
		Width:      width,
		Height:     height,
		BarWidth:   max(16, (width-120)/len(bars)-12),
		Background: chart.Style{Padding: chart.Box{Top: 48}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: ceiling(r.Leader.Count)},
		},
		Bars: bars,
	}
	return bc.Render(f.renderer(), w)
}

// RenderPayments draws the payment distribution as a pie in legend order.
func RenderPayments(w io.Writer, p domain.PaymentDistribution, f Format) error {
	byName := make(map[string]domain.PaymentCount, len(p.Counts))
	total := 0
	for _, c := range p.Counts {
		byName[c.Name] = c
		total += c.Count
	}
	if total == 0 {
		return ErrNoData
	}

	values := make([]chart.Value, 0, len(p.LegendOrder))
	for _, name := range p.LegendOrder {
		c, ok := byName[name]
		if !ok || c.Count == 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", name, 100*float64(c.Count)/float64(total)),
			Value: float64(c.Count),
			Style: chart.Style{FillColor: color(analytics.PaymentColor(name))},
		})
	}

	pc := chart.PieChart{
		Title:  "Payment methods",
		Width:  height,
		Height: height,
		Values: values,
	}
	return pc.Render(f.renderer(), w)
}

// RenderGenderFrame draws one hour of the gender comparison. The y range is
// shared by every frame so the animation does not rescale.
func RenderGenderFrame(w io.Writer, g domain.GenderByHour, hour int, f Format) error {
	if len(g.Counts) == 0 {
		return ErrNoData
	}

	frame := make(map[string]int, len(g.Sexes))
	for _, c := range g.Frame(hour) {
		frame[c.Sex] = c.Count
	}

	bars := make([]chart.Value, 0, len(g.Sexes))
	for _, sex := range g.Sexes {
		bars = append(bars, chart.Value{
			Label: sex,
			Value: float64(frame[sex]),
			Style: chart.Style{
				FillColor:   color(analytics.GenderColor(sex)),
				StrokeColor: color(analytics.GenderColor(sex)),
			},
		})
	}

	bc := chart.BarChart{
		Title:      fmt.Sprintf("Transactions by gender at %s", narrative.FormatHour(hour)),
		Width:      height,
		Height:     height,
		BarWidth:   96,
		Background: chart.Style{Padding: chart.Box{Top: 48}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: ceiling(g.MaxCount)},
		},
		Bars: bars,
	}
	return bc.Render(f.renderer(), w)
}
