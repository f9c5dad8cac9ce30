package numeric

import "github.com/shopspring/decimal"

// Round rounds half away from zero to the given number of decimal places.
func Round(value float64, places int32) float64 {
	out, _ := decimal.NewFromFloat(value).Round(places).Float64()
	return out
}

// Ratio returns numerator/denominator rounded to places, or zero when the
// denominator is not positive.
func Ratio(numerator, denominator float64, places int32) float64 {
	if denominator <= 0 {
		return 0
	}
	return decimal.NewFromFloat(numerator).
		DivRound(decimal.NewFromFloat(denominator), places+4).
		Round(places).
		InexactFloat64()
}
