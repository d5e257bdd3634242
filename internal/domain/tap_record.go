package domain

import "time"

// TapRecord is one tap-in/tap-out fare transaction.
type TapRecord struct {
	TapInTime    time.Time  `json:"tap_in_time"`
	TapOutTime   *time.Time `json:"tap_out_time,omitempty"`
	CorridorName string     `json:"corridor_name,omitempty"`
	PayCardBank  string     `json:"pay_card_bank"`
	PayCardSex   string     `json:"pay_card_sex"`

	TapInStopsLat  *float64 `json:"tap_in_stops_lat,omitempty"`
	TapInStopsLon  *float64 `json:"tap_in_stops_lon,omitempty"`
	TapOutStopsLat *float64 `json:"tap_out_stops_lat,omitempty"`
	TapOutStopsLon *float64 `json:"tap_out_stops_lon,omitempty"`

	// Hour is derived from TapInTime on construction.
	Hour int `json:"hour"`
}

// NewTapRecord fills the derived fields of r.
func NewTapRecord(r TapRecord) TapRecord {
	r.Hour = r.TapInTime.Hour()
	return r
}

// Weekday returns the English weekday name of the tap-in time.
func (r TapRecord) Weekday() string {
	return r.TapInTime.Weekday().String()
}

// HasLocation reports whether all four stop coordinates are present.
func (r TapRecord) HasLocation() bool {
	return r.TapInStopsLat != nil && r.TapInStopsLon != nil &&
		r.TapOutStopsLat != nil && r.TapOutStopsLon != nil
}
