// Package mathutil provides common mathematical utility functions.
package mathutil

import "math"

// RoundTo rounds a value half-up to the given number of fractional digits.
// Used for settling a computed amount into displayable currency precision.
func RoundTo(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Floor(val*pow+0.5) / pow
}

// Clamp restricts val to the inclusive range [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ApplyPercentage scales a value by a percentage adjustment, e.g.
// ApplyPercentage(100, 20) == 120 and ApplyPercentage(100, -20) == 80.
func ApplyPercentage(value, percentage float64) float64 {
	return value * (1 + percentage/100)
}
