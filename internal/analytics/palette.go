package analytics

// bankDisplayNames maps payment provider codes to labels.
var bankDisplayNames = map[string]string{
	"dki":    "DKI",
	"emoney": "e-Money",
	"bni":    "BNI",
	"brizzi": "BRIZZI",
	"flazz":  "Flazz",
	"online": "Online",
}

// PaymentLegendOrder is the fixed legend sequence, independent of counts.
var PaymentLegendOrder = []string{"DKI", "e-Money", "BRIZZI", "BNI", "Flazz", "Online"}

// PaymentColors keys fixed colors by display name.
var PaymentColors = map[string]string{
	"DKI":     "#1f77b4",
	"e-Money": "#ff7f0e",
	"BNI":     "#2ca02c",
	"BRIZZI":  "#d62728",
	"Flazz":   "#8c564b",
	"Online":  "#9467bd",
}

// GenderColors keys fixed colors by card holder sex.
var GenderColors = map[string]string{
	"Male":   "#1f77b4",
	"Female": "#ff7f0e",
}

// HourlyColor fills the hourly area chart.
const HourlyColor = "#636EFA"

// RoutePalette is cycled over the ranked corridors.
var RoutePalette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// FallbackColor is used for names without a fixed color.
const FallbackColor = "#7f7f7f"

// RemapBank returns the display name of a bank code. Unknown values, including
// display names themselves, pass through unchanged.
func RemapBank(code string) string {
	if name, ok := bankDisplayNames[code]; ok {
		return name
	}
	return code
}

// PaymentColor returns the fixed color of a display name.
func PaymentColor(name string) string {
	if c, ok := PaymentColors[name]; ok {
		return c
	}
	return FallbackColor
}

// RouteColor returns the palette color for rank i (0-based).
func RouteColor(i int) string {
	return RoutePalette[i%len(RoutePalette)]
}

// GenderColor returns the fixed color of a sex label.
func GenderColor(sex string) string {
	if c, ok := GenderColors[sex]; ok {
		return c
	}
	return FallbackColor
}
