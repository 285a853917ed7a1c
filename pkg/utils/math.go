package utils

import "math"

// RoundDecimal rounds value to the given number of decimal places, with halves
// rounded toward positive infinity. RoundDecimal(2.345, 2) returns 2.35 and
// RoundDecimal(-2.345, 2) returns -2.34.
func RoundDecimal(value float64, decimals int) float64 {
	pow := math.Pow10(decimals)
	return math.Floor(value*pow+0.5) / pow
}

// IsFinite reports whether v is neither infinite nor NaN.
func IsFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
