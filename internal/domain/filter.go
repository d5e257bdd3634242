package domain

import (
	"sort"
	"strings"
)

// AllCorridors disables the corridor predicate.
const AllCorridors = "ALL"

// Filter is the conjunction of the three dashboard predicates.
// Day is always active. An empty Banks set means no bank predicate.
type Filter struct {
	Day      string   `json:"day"`
	Corridor string   `json:"corridor"`
	Banks    []string `json:"banks,omitempty"`
}

// Normalized returns a copy with the corridor defaulted to ALL and banks
// de-duplicated and sorted.
func (f Filter) Normalized() Filter {
	out := Filter{Day: f.Day, Corridor: f.Corridor}
	if strings.TrimSpace(out.Corridor) == "" {
		out.Corridor = AllCorridors
	}
	if len(f.Banks) > 0 {
		seen := make(map[string]struct{}, len(f.Banks))
		for _, b := range f.Banks {
			if _, ok := seen[b]; ok {
				continue
			}
			seen[b] = struct{}{}
			out.Banks = append(out.Banks, b)
		}
		sort.Strings(out.Banks)
	}
	return out
}

// Key identifies the normalized filter, e.g. "Monday|ALL|dki,emoney".
func (f Filter) Key() string {
	n := f.Normalized()
	return n.Day + "|" + n.Corridor + "|" + strings.Join(n.Banks, ",")
}
