package utils

import "math"

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// ClipInt16 saturates x to the int16 range and truncates toward zero.
// NaN maps to 0.
func ClipInt16(x float64) int16 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt16:
		return math.MaxInt16
	case x <= math.MinInt16:
		return math.MinInt16
	}

	return int16(x)
}
