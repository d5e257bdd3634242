package domain

// HourlyCount is the number of taps in one hour-of-day bucket.
type HourlyCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// HourlyTrend holds only hours present in the view, ascending.
// Peak is nil when the view is empty.
type HourlyTrend struct {
	Counts []HourlyCount `json:"counts"`
	Peak   *HourlyCount  `json:"peak"`
}

type RouteCount struct {
	Corridor string `json:"corridor"`
	Count    int    `json:"count"`
}

// RouteRanking is sorted by count descending. Leader is nil when empty.
type RouteRanking struct {
	Top    []RouteCount `json:"top"`
	Leader *RouteCount  `json:"leader"`
}

// LocationPair is one map marker pair (tap-in and tap-out stop).
type LocationPair struct {
	TapIn      Point   `json:"tap_in"`
	TapOut     Point   `json:"tap_out"`
	Corridor   string  `json:"corridor,omitempty"`
	DistanceKm float64 `json:"distance_km"`
}

// LocationMap carries the first N valid pairs in table order. Center and
// Bounds are computed over every valid row, and are nil when there are none.
type LocationMap struct {
	Pairs     []LocationPair `json:"pairs"`
	ValidRows int            `json:"valid_rows"`
	Center    *Point         `json:"center"`
	Bounds    *BoundingBox   `json:"bounds"`
}

// PaymentCount is a bank bucket after the display-name remap.
type PaymentCount struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color,omitempty"`
}

// PaymentDistribution is sorted by count descending. LegendOrder is the
// fixed display sequence restricted to names present, unknown names last.
type PaymentDistribution struct {
	Counts      []PaymentCount `json:"counts"`
	LegendOrder []string       `json:"legend_order"`
}

type GenderHourCount struct {
	Hour  int    `json:"hour"`
	Sex   string `json:"sex"`
	Count int    `json:"count"`
}

// GenderByHour drives the per-hour animated comparison. MaxCount is the
// shared y-axis ceiling across frames.
type GenderByHour struct {
	Counts   []GenderHourCount `json:"counts"`
	Hours    []int             `json:"hours"`
	Sexes    []string          `json:"sexes"`
	MaxCount int               `json:"max_count"`
}

// Frame returns the counts of one hour, in Sexes order.
func (g GenderByHour) Frame(hour int) []GenderHourCount {
	var out []GenderHourCount
	for _, c := range g.Counts {
		if c.Hour == hour {
			out = append(out, c)
		}
	}
	return out
}

// Narrative is the templated written summary.
type Narrative struct {
	PeakHour       string `json:"peak_hour"`
	TopRoute       string `json:"top_route"`
	DominantMethod string `json:"dominant_method"`
	OtherMethods   string `json:"other_methods"`
	Recommendation string `json:"recommendation"`
	Text           string `json:"text"`
}

// Dashboard bundles every aggregate for one filter. Empty marks a filter
// that matched no rows; all aggregates are then in their no-data state.
type Dashboard struct {
	Filter    Filter              `json:"filter"`
	TotalRows int                 `json:"total_rows"`
	Empty     bool                `json:"empty"`
	Hourly    HourlyTrend         `json:"hourly"`
	Routes    RouteRanking        `json:"routes"`
	Locations LocationMap         `json:"locations"`
	Payments  PaymentDistribution `json:"payments"`
	Gender    GenderByHour        `json:"gender"`
	Narrative Narrative           `json:"narrative"`
}
