package analytics

import (
	"sort"

	"github.com/transit-dashboard/internal/domain"
)

// GenderHourCounts counts taps per (hour, sex), ordered by hour and then by
// sex label. The returned labels are sorted. Rows without a sex label are
// skipped.
func GenderHourCounts(view []domain.TapRecord) ([]domain.GenderHourCount, []string, error) {
	book := newCodebook()
	hours := make([]int, 0, len(view))
	sexes := make([]int, 0, len(view))
	for _, r := range view {
		if r.PayCardSex == "" {
			continue
		}
		hours = append(hours, r.Hour)
		sexes = append(sexes, book.code(r.PayCardSex))
	}

	groups, err := countBy(len(hours),
		keyColumn{name: "hour", values: hours},
		keyColumn{name: "sex", values: sexes},
	)
	if err != nil {
		return nil, nil, err
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].key[0] != groups[j].key[0] {
			return groups[i].key[0] < groups[j].key[0]
		}
		return book.value(groups[i].key[1]) < book.value(groups[j].key[1])
	})

	out := make([]domain.GenderHourCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, domain.GenderHourCount{
			Hour:  g.key[0],
			Sex:   book.value(g.key[1]),
			Count: g.count,
		})
	}
	labels := append([]string(nil), book.values...)
	sort.Strings(labels)
	return out, labels, nil
}

// GenderByHour bundles the counts with frame hours and the shared y ceiling.
func GenderByHour(view []domain.TapRecord) (domain.GenderByHour, error) {
	counts, sexes, err := GenderHourCounts(view)
	if err != nil {
		return domain.GenderByHour{}, err
	}

	g := domain.GenderByHour{
		Counts: nonNil(counts),
		Hours:  []int{},
		Sexes:  nonNil(sexes),
	}
	for _, c := range counts {
		if n := len(g.Hours); n == 0 || g.Hours[n-1] != c.Hour {
			g.Hours = append(g.Hours, c.Hour)
		}
		if c.Count > g.MaxCount {
			g.MaxCount = c.Count
		}
	}
	return g, nil
}
