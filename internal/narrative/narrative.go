// Package narrative renders the written summary of a dashboard.
package narrative

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/transit-dashboard/internal/domain"
)

const (
	noPeakText     = "No transactions match the selected filters, so no peak hour is available."
	noRouteText    = "No corridor data is available for the selected filters."
	noPaymentText  = "Payment method data is not available."
	noOthersText   = "There is no data for other payment methods."
	noRecommending = "Widen the filters to get a recommendation."
)

var summaryTemplate = template.Must(template.New("summary").Parse(
	`Key findings for {{.Day}}{{if .Corridor}} on corridor {{.Corridor}}{{end}}:

1. Peak hours
   - {{.PeakHour}}

2. Most popular route
   - {{.TopRoute}}

3. Payment methods
   - {{.DominantMethod}}
   - {{.OtherMethods}}

Recommendation:
   - {{.Recommendation}}
`))

type summaryData struct {
	domain.Narrative
	Day      string
	Corridor string
}

// Build fills the summary sentences from d. Each aggregate that is empty
// falls back to a fixed sentence.
func Build(d *domain.Dashboard) (domain.Narrative, error) {
	n := domain.Narrative{
		PeakHour:       peakSentence(d.Hourly),
		TopRoute:       routeSentence(d.Routes),
		DominantMethod: dominantSentence(d.Payments.Counts),
		OtherMethods:   othersSentence(d.Payments.Counts),
		Recommendation: recommendation(d),
	}

	data := summaryData{Narrative: n, Day: d.Filter.Day}
	if c := d.Filter.Corridor; c != "" && c != domain.AllCorridors {
		data.Corridor = c
	}

	var buf bytes.Buffer
	if err := summaryTemplate.Execute(&buf, data); err != nil {
		return domain.Narrative{}, fmt.Errorf("render summary: %w", err)
	}
	n.Text = buf.String()
	return n, nil
}

// FormatHour renders an hour bucket as HH:00.
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

func peakSentence(h domain.HourlyTrend) string {
	if h.Peak == nil {
		return noPeakText
	}
	return fmt.Sprintf("Transactions peak at %s with %d %s.",
		FormatHour(h.Peak.Hour), h.Peak.Count, plural(h.Peak.Count, "transaction"))
}

func routeSentence(r domain.RouteRanking) string {
	if r.Leader == nil {
		return noRouteText
	}
	return fmt.Sprintf("Corridor %s is the most used corridor with %d %s.",
		r.Leader.Corridor, r.Leader.Count, plural(r.Leader.Count, "transaction"))
}

func dominantSentence(counts []domain.PaymentCount) string {
	if len(counts) == 0 {
		return noPaymentText
	}
	top := counts[0]
	return fmt.Sprintf("%s is the dominant payment method with %d %s.",
		top.Name, top.Count, plural(top.Count, "transaction"))
}

func othersSentence(counts []domain.PaymentCount) string {
	if len(counts) < 2 {
		return noOthersText
	}
	others := counts[1:]
	if len(others) >= 2 {
		return fmt.Sprintf("Other payment methods such as %s and %s follow with %d and %d transactions.",
			others[0].Name, others[1].Name, others[0].Count, others[1].Count)
	}
	return fmt.Sprintf("The only other payment method, %s, accounts for %d %s.",
		others[0].Name, others[0].Count, plural(others[0].Count, "transaction"))
}

func recommendation(d *domain.Dashboard) string {
	if d.Empty {
		return noRecommending
	}

	var parts []string
	if p := d.Hourly.Peak; p != nil {
		parts = append(parts, fmt.Sprintf("schedule extra capacity around %s", FormatHour(p.Hour)))
	}
	if l := d.Routes.Leader; l != nil {
		parts = append(parts, fmt.Sprintf("prioritise corridor %s", l.Corridor))
	}
	if len(d.Payments.Counts) > 0 {
		parts = append(parts, fmt.Sprintf("keep %s payments running smoothly", d.Payments.Counts[0].Name))
	}
	if len(parts) == 0 {
		return noRecommending
	}

	s := strings.Join(parts, "; ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
