package crowd

import "math"

// RoundHalfUp rounds to the nearest integer with .5 rounding up
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// ClampInt limits v to the [min, max] range
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampFloat limits v to the [min, max] range
func ClampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Round1 rounds to one decimal place
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Round2 rounds to two decimal places
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
