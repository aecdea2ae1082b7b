package util

import (
	"math"
	"strconv"
)

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RoundInt rounds half away from zero.
func RoundInt(f float64) int {
	return int(math.Round(f))
}

// FormatFloat renders an angle for storage without losing precision.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
