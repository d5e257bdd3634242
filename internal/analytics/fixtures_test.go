package analytics_test

import (
	"time"

	"github.com/transit-dashboard/internal/domain"
)

func f64(v float64) *float64 { return &v }

// tap builds a record on 2023-04-03 (Monday) + dayOffset at hour:00.
func tap(dayOffset, hour int, corridor, bank, sex string) domain.TapRecord {
	ts := time.Date(2023, 4, 3+dayOffset, hour, 0, 0, 0, time.UTC)
	return domain.NewTapRecord(domain.TapRecord{
		TapInTime:    ts,
		CorridorName: corridor,
		PayCardBank:  bank,
		PayCardSex:   sex,
	})
}

func located(r domain.TapRecord, inLat, inLon, outLat, outLon float64) domain.TapRecord {
	r.TapInStopsLat, r.TapInStopsLon = f64(inLat), f64(inLon)
	r.TapOutStopsLat, r.TapOutStopsLon = f64(outLat), f64(outLon)
	return r
}

// scenarioRecords is the three-row table used throughout the dashboard docs.
func scenarioRecords() []domain.TapRecord {
	third := tap(1, 11, "CorridorB", "dki", "Male")
	third.TapOutStopsLat, third.TapOutStopsLon = f64(-6.3), f64(106.9)

	return []domain.TapRecord{
		located(tap(0, 10, "CorridorA", "dki", "Male"), -6.2, 106.8, -6.3, 106.9),
		located(tap(0, 10, "CorridorA", "emoney", "Female"), -6.2, 106.8, -6.3, 106.9),
		third,
	}
}

// mixedRecords spans two days, three corridors and four banks.
func mixedRecords() []domain.TapRecord {
	return []domain.TapRecord{
		tap(0, 6, "1", "dki", "Male"),
		tap(0, 6, "1", "emoney", "Female"),
		tap(0, 7, "2", "dki", "Male"),
		tap(0, 7, "2", "brizzi", "Male"),
		tap(0, 7, "1", "dki", "Female"),
		tap(0, 17, "3", "flazz", "Female"),
		tap(0, 17, "", "dki", "Female"),
		tap(1, 8, "1", "dki", "Male"),
		tap(1, 9, "2", "emoney", "Female"),
	}
}
