package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/transit-dashboard/internal/domain"
)

func ptr(v float64) *float64 { return &v }

func record(ts string, corridor, bank string) domain.TapRecord {
	t, err := time.Parse("2006-01-02 15:04:05", ts)
	if err != nil {
		panic(err)
	}
	return domain.NewTapRecord(domain.TapRecord{
		TapInTime:    t,
		CorridorName: corridor,
		PayCardBank:  bank,
		PayCardSex:   "Male",
	})
}

func TestNewTapRecord_DerivesHour(t *testing.T) {
	r := record("2023-04-03 17:45:10", "Blok M - Kota", "dki")

	assert.Equal(t, 17, r.Hour)
	assert.Equal(t, "Monday", r.Weekday())
	assert.False(t, r.HasLocation())

	r.TapInStopsLat, r.TapInStopsLon = ptr(-6.2), ptr(106.8)
	r.TapOutStopsLat, r.TapOutStopsLon = ptr(-6.3), ptr(106.9)
	assert.True(t, r.HasLocation())
}

func TestNewDataset_Options(t *testing.T) {
	records := []domain.TapRecord{
		record("2023-04-04 08:00:00", "B", "emoney"), // Tuesday
		record("2023-04-03 09:00:00", "A", "dki"),    // Monday
		record("2023-04-04 10:00:00", "", "dki"),
		record("2023-04-03 11:00:00", "B", "flazz"),
	}

	ds := domain.NewDataset(records, "test")

	assert.Equal(t, 4, ds.Len())
	assert.Equal(t, []string{"Tuesday", "Monday"}, ds.Days())
	assert.Equal(t, []string{"B", "A"}, ds.Corridors())
	assert.Equal(t, []string{"emoney", "dki", "flazz"}, ds.Banks())
	assert.Equal(t, "Tuesday", ds.DefaultDay())
	assert.True(t, ds.HasDay("Monday"))
	assert.False(t, ds.HasDay("Sunday"))
	assert.Equal(t, "test", ds.Source())
}

func TestNewDataset_SkipsBlankBank(t *testing.T) {
	records := []domain.TapRecord{
		record("2023-04-03 09:00:00", "A", ""),
		record("2023-04-03 10:00:00", "A", "dki"),
		record("2023-04-03 11:00:00", "", ""),
	}

	ds := domain.NewDataset(records, "test")

	assert.Equal(t, []string{"dki"}, ds.Banks())
	assert.Equal(t, []string{"A"}, ds.Corridors())
	assert.Equal(t, 3, ds.Len())
}

func TestNewDataset_Fingerprint(t *testing.T) {
	a := []domain.TapRecord{record("2023-04-03 09:00:00", "A", "dki")}
	b := []domain.TapRecord{record("2023-04-03 09:00:00", "A", "bni")}

	assert.Equal(t, domain.NewDataset(a, "x").Fingerprint(), domain.NewDataset(a, "y").Fingerprint())
	assert.NotEqual(t, domain.NewDataset(a, "x").Fingerprint(), domain.NewDataset(b, "x").Fingerprint())
}

func TestNewDataset_Empty(t *testing.T) {
	ds := domain.NewDataset(nil, "empty")
	assert.Equal(t, "", ds.DefaultDay())
	assert.Empty(t, ds.Days())
}

func TestFilter_Key(t *testing.T) {
	f := domain.Filter{Day: "Monday", Banks: []string{"emoney", "dki", "emoney"}}

	assert.Equal(t, "Monday|ALL|dki,emoney", f.Key())
	assert.Equal(t, domain.AllCorridors, f.Normalized().Corridor)
	assert.Equal(t, "Monday|ALL|", domain.Filter{Day: "Monday", Corridor: "ALL"}.Key())
}

func TestGenderByHour_Frame(t *testing.T) {
	g := domain.GenderByHour{Counts: []domain.GenderHourCount{
		{Hour: 6, Sex: "Male", Count: 3},
		{Hour: 7, Sex: "Male", Count: 1},
		{Hour: 7, Sex: "Female", Count: 2},
	}}

	assert.Len(t, g.Frame(7), 2)
	assert.Empty(t, g.Frame(8))
}
