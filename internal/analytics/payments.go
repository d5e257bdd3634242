package analytics

import (
	"github.com/transit-dashboard/internal/domain"
)

// PaymentCounts counts taps per bank code, sorted by count descending (ties
// keep first appearance), with display names and colors attached. Rows
// without a bank are skipped.
func PaymentCounts(view []domain.TapRecord) ([]domain.PaymentCount, error) {
	book := newCodebook()
	codes := make([]int, 0, len(view))
	for _, r := range view {
		if r.PayCardBank == "" {
			continue
		}
		codes = append(codes, book.code(r.PayCardBank))
	}

	groups, err := countBy(len(codes), keyColumn{name: "bank", values: codes})
	if err != nil {
		return nil, err
	}
	sortByCountDesc(groups)

	out := make([]domain.PaymentCount, 0, len(groups))
	for _, g := range groups {
		code := book.value(g.key[0])
		name := RemapBank(code)
		out = append(out, domain.PaymentCount{
			Code:  code,
			Name:  name,
			Count: g.count,
			Color: PaymentColor(name),
		})
	}
	return out, nil
}

// LegendOrder lists the fixed legend names that are present in counts,
// followed by any other names in counts order.
func LegendOrder(counts []domain.PaymentCount) []string {
	present := make(map[string]bool, len(counts))
	for _, c := range counts {
		present[c.Name] = true
	}

	out := make([]string, 0, len(counts))
	fixed := make(map[string]bool, len(PaymentLegendOrder))
	for _, name := range PaymentLegendOrder {
		fixed[name] = true
		if present[name] {
			out = append(out, name)
		}
	}
	for _, c := range counts {
		if !fixed[c.Name] {
			out = append(out, c.Name)
			fixed[c.Name] = true
		}
	}
	return out
}

// PaymentDistribution bundles counts and legend order.
func PaymentDistribution(view []domain.TapRecord) (domain.PaymentDistribution, error) {
	counts, err := PaymentCounts(view)
	if err != nil {
		return domain.PaymentDistribution{}, err
	}
	return domain.PaymentDistribution{
		Counts:      nonNil(counts),
		LegendOrder: LegendOrder(counts),
	}, nil
}
