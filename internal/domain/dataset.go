package domain

import (
	"encoding/binary"
	"math"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Dataset is the immutable, loaded-once table of tap records.
// Callers must treat Records() as read-only.
type Dataset struct {
	records     []TapRecord
	days        []string
	corridors   []string
	banks       []string
	source      string
	loadedAt    time.Time
	fingerprint string
}

// NewDataset indexes records. Option lists keep first-appearance order.
func NewDataset(records []TapRecord, source string) *Dataset {
	d := &Dataset{
		records:  records,
		source:   source,
		loadedAt: time.Now(),
	}

	seenDay := make(map[string]struct{})
	seenCorridor := make(map[string]struct{})
	seenBank := make(map[string]struct{})
	h := xxhash.New()

	for _, r := range records {
		day := r.Weekday()
		if _, ok := seenDay[day]; !ok {
			seenDay[day] = struct{}{}
			d.days = append(d.days, day)
		}
		if r.CorridorName != "" {
			if _, ok := seenCorridor[r.CorridorName]; !ok {
				seenCorridor[r.CorridorName] = struct{}{}
				d.corridors = append(d.corridors, r.CorridorName)
			}
		}
		if r.PayCardBank != "" {
			if _, ok := seenBank[r.PayCardBank]; !ok {
				seenBank[r.PayCardBank] = struct{}{}
				d.banks = append(d.banks, r.PayCardBank)
			}
		}
		hashRecord(h, r)
	}

	d.fingerprint = strconv.FormatUint(h.Sum64(), 16)
	return d
}

func (d *Dataset) Records() []TapRecord { return d.records }

func (d *Dataset) Len() int { return len(d.records) }

// Days lists distinct weekday names present in the data.
func (d *Dataset) Days() []string { return append([]string(nil), d.days...) }

// Corridors lists distinct non-missing corridor names.
func (d *Dataset) Corridors() []string { return append([]string(nil), d.corridors...) }

// Banks lists distinct bank codes.
func (d *Dataset) Banks() []string { return append([]string(nil), d.banks...) }

func (d *Dataset) Source() string { return d.source }

func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Fingerprint is a content hash; identical inputs give identical fingerprints.
func (d *Dataset) Fingerprint() string { return d.fingerprint }

// HasDay reports whether any record falls on the given weekday.
func (d *Dataset) HasDay(day string) bool {
	for _, v := range d.days {
		if v == day {
			return true
		}
	}
	return false
}

// DefaultDay is the first weekday present in the data, or "" when empty.
func (d *Dataset) DefaultDay() string {
	if len(d.days) == 0 {
		return ""
	}
	return d.days[0]
}

func hashRecord(h *xxhash.Digest, r TapRecord) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(r.TapInTime.UnixNano()))
	_, _ = h.Write(buf[:])
	if r.TapOutTime != nil {
		binary.LittleEndian.PutUint64(buf[:], uint64(r.TapOutTime.UnixNano()))
		_, _ = h.Write(buf[:])
	}
	_, _ = h.WriteString(r.CorridorName)
	_, _ = h.WriteString("\x00" + r.PayCardBank + "\x00" + r.PayCardSex + "\x00")
	for _, f := range []*float64{r.TapInStopsLat, r.TapInStopsLon, r.TapOutStopsLat, r.TapOutStopsLon} {
		bits := uint64(math.MaxUint64)
		if f != nil {
			bits = math.Float64bits(*f)
		}
		binary.LittleEndian.PutUint64(buf[:], bits)
		_, _ = h.Write(buf[:])
	}
}
