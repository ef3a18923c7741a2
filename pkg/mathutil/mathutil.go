// Package mathutil provides common mathematical utility functions.
package mathutil

import "capital-viability/pkg/constants"

// ClampInt restricts an integer to the range [lo, hi]
func ClampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampFloat restricts a float to the range [lo, hi]
func ClampFloat(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}
