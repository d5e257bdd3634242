package analytics

import "github.com/transit-dashboard/internal/domain"

// Predicate selects tap records.
type Predicate func(domain.TapRecord) bool

// DayIs matches records whose tap-in falls on the named weekday.
func DayIs(day string) Predicate {
	return func(r domain.TapRecord) bool {
		return r.Weekday() == day
	}
}

// CorridorIs matches one corridor; ALL returns nil (no predicate).
func CorridorIs(corridor string) Predicate {
	if corridor == "" || corridor == domain.AllCorridors {
		return nil
	}
	return func(r domain.TapRecord) bool {
		return r.CorridorName == corridor
	}
}

// BankIn matches membership in banks; an empty set returns nil (no predicate).
func BankIn(banks []string) Predicate {
	if len(banks) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(banks))
	for _, b := range banks {
		set[b] = struct{}{}
	}
	return func(r domain.TapRecord) bool {
		_, ok := set[r.PayCardBank]
		return ok
	}
}

// Predicates returns the active predicates of f. The day predicate is
// always present.
func Predicates(f domain.Filter) []Predicate {
	preds := []Predicate{DayIs(f.Day)}
	if p := CorridorIs(f.Corridor); p != nil {
		preds = append(preds, p)
	}
	if p := BankIn(f.Banks); p != nil {
		preds = append(preds, p)
	}
	return preds
}

// Apply returns a fresh slice with the records matching every predicate of f,
// in table order. The input is never modified.
func Apply(records []domain.TapRecord, f domain.Filter) []domain.TapRecord {
	preds := Predicates(f)
	out := make([]domain.TapRecord, 0, len(records)/7+1)
	for _, r := range records {
		if matchAll(r, preds) {
			out = append(out, r)
		}
	}
	return out
}

func matchAll(r domain.TapRecord, preds []Predicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}
