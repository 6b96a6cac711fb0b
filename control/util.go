package control

import "math"

// round rounds halves towards positive infinity
func round(val float64) int {
	return int(math.Floor(val + 0.5))
}

func clamp(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
