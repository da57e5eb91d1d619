package convert

import (
	"go-fx-widget/domain"
	"math"
)

// DefaultPlaces the rounding scale of currencies without an explicit entry
const DefaultPlaces = 4

// Precision maps a currency to the number of decimal places its converted amounts are rounded to.
// Currencies absent from the map use DefaultPlaces.
type Precision map[domain.Currency]int

// DefaultPrecision rounds the near-integer quoted currencies to 2 places
func DefaultPrecision() Precision {
	return Precision{
		"JPY": 2,
		"KRW": 2,
	}
}

// Places returns the rounding scale for a currency
func (p Precision) Places(currency domain.Currency) int {
	if places, ok := p[currency]; ok {
		return places
	}
	return DefaultPlaces
}

// Round rounds half away from zero at the given number of decimal places,
// by scaling with 10^places, rounding to an integer and scaling back.
// A value too large to scale is returned unchanged; at that magnitude it has no
// fractional digits left to round.
func Round(value float64, places int) float64 {
	scale := math.Pow10(places)
	scaled := value * scale
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return value
	}
	return math.Round(scaled) / scale
}
