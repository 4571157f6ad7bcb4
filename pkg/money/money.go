// Package money holds the cents arithmetic shared by pricing and budgeting.
//
// All amounts in the planner are integer minor currency units ("cents");
// floats only appear at the edges, when a fractional rate is applied or a
// dollar figure crosses the HTTP boundary for display.
package money

import "math"

// RoundHalfAwayFromZero rounds to the nearest integer cent, halves away
// from zero (math.Round semantics). This is the single rounding mode used
// everywhere a rate is applied to a cents amount.
func RoundHalfAwayFromZero(v float64) int64 {
	return int64(math.Round(v))
}

// ApplyRate multiplies a cents amount by a decimal fraction rate and rounds
// to the nearest cent.
func ApplyRate(amountCents int64, rate float64) int64 {
	return RoundHalfAwayFromZero(float64(amountCents) * rate)
}

// DollarsToCents converts a major-unit amount to cents.
func DollarsToCents(dollars float64) int64 {
	return RoundHalfAwayFromZero(dollars * 100)
}

// CentsToDollars converts cents back to major units for display.
func CentsToDollars(cents int64) float64 {
	return float64(cents) / 100
}
