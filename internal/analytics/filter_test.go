package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/transit-dashboard/internal/analytics"
	"github.com/transit-dashboard/internal/domain"
)

func TestApply_Scenario(t *testing.T) {
	view := analytics.Apply(scenarioRecords(), domain.Filter{Day: "Monday", Corridor: domain.AllCorridors})

	assert.Len(t, view, 2)
	for _, r := range view {
		assert.Equal(t, "Monday", r.Weekday())
	}
}

func TestApply_Conjunction(t *testing.T) {
	records := mixedRecords()
	filters := []domain.Filter{
		{Day: "Monday", Corridor: domain.AllCorridors},
		{Day: "Monday", Corridor: "1"},
		{Day: "Monday", Corridor: "1", Banks: []string{"dki"}},
		{Day: "Monday", Corridor: domain.AllCorridors, Banks: []string{"dki", "flazz"}},
		{Day: "Tuesday", Corridor: "2", Banks: []string{"emoney"}},
		{Day: "Sunday", Corridor: domain.AllCorridors},
	}

	for _, f := range filters {
		view := analytics.Apply(records, f)

		// membership equals the independent AND of the predicates
		var expected []domain.TapRecord
		for _, r := range records {
			day := r.Weekday() == f.Day
			corridor := f.Corridor == domain.AllCorridors || r.CorridorName == f.Corridor
			bank := len(f.Banks) == 0
			for _, b := range f.Banks {
				if r.PayCardBank == b {
					bank = true
				}
			}
			if day && corridor && bank {
				expected = append(expected, r)
			}
		}
		assert.Equal(t, len(expected), len(view), "filter %s", f.Key())
		assert.ElementsMatch(t, expected, view, "filter %s", f.Key())

		// subset of the input, order independent of predicate order
		reversed := analytics.Apply(analytics.Apply(records, domain.Filter{Day: f.Day, Banks: f.Banks}), f)
		assert.Equal(t, view, reversed)
	}
}

func TestApply_EmptyBankSetIsIdentity(t *testing.T) {
	records := mixedRecords()
	none := analytics.Apply(records, domain.Filter{Day: "Monday", Corridor: domain.AllCorridors})
	empty := analytics.Apply(records, domain.Filter{Day: "Monday", Corridor: domain.AllCorridors, Banks: []string{}})

	assert.Equal(t, none, empty)
	assert.Len(t, none, 7)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	records := mixedRecords()
	before := append([]domain.TapRecord(nil), records...)

	view := analytics.Apply(records, domain.Filter{Day: "Tuesday"})
	view[0].CorridorName = "changed"

	assert.Equal(t, before, records)
}

func TestApply_EmptyResult(t *testing.T) {
	view := analytics.Apply(mixedRecords(), domain.Filter{Day: "Monday", Corridor: "99"})
	assert.NotNil(t, view)
	assert.Empty(t, view)
}

func TestPredicates(t *testing.T) {
	assert.Len(t, analytics.Predicates(domain.Filter{Day: "Monday"}), 1)
	assert.Len(t, analytics.Predicates(domain.Filter{Day: "Monday", Corridor: "ALL"}), 1)
	assert.Len(t, analytics.Predicates(domain.Filter{Day: "Monday", Corridor: "1", Banks: []string{"dki"}}), 3)
	assert.Nil(t, analytics.BankIn(nil))
	assert.Nil(t, analytics.CorridorIs(domain.AllCorridors))
}
