// Package overs converts between legal-ball counts and cricket over notation.
//
// Notation is a decimal whose integer part is completed overs and whose first
// fractional digit is the number of legal balls into the current over, so 13
// legal balls is 2.1. The value is not a true decimal: arithmetic that divides
// by it (economy, run rate) treats it as a plain real number.
package overs

import (
	"math"
	"strconv"
)

const BallsPerOver = 6

// FromBalls returns the over notation for a legal-ball count.
func FromBalls(legalBalls int) float64 {
	if legalBalls <= 0 {
		return 0
	}
	return float64(legalBalls/BallsPerOver) + float64(legalBalls%BallsPerOver)/10
}

// ToBalls is the inverse of FromBalls. Fractional digits above 5 are carried
// into whole overs.
func ToBalls(notation float64) int {
	if notation <= 0 {
		return 0
	}
	whole := math.Floor(notation)
	partial := int(math.Round((notation - whole) * 10))
	return int(whole)*BallsPerOver + partial
}

// Format renders notation with exactly one decimal place.
func Format(notation float64) string {
	return strconv.FormatFloat(notation, 'f', 1, 64)
}

// FormatBalls is Format(FromBalls(legalBalls)).
func FormatBalls(legalBalls int) string {
	return Format(FromBalls(legalBalls))
}

// Sum adds notations through their ball counts so 0.4 + 0.4 is 1.2.
func Sum(values ...float64) float64 {
	total := 0
	for _, v := range values {
		total += ToBalls(v)
	}
	return FromBalls(total)
}
