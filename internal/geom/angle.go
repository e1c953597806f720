package geom

import "math"

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// NormalizeDegrees wraps an angle into [0, 360).
// Values already in range are returned unchanged, bit for bit.
func NormalizeDegrees(deg float64) float64 {
	if deg >= 0 && deg < 360 {
		return deg
	}
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	// -1e-15 + 360 rounds to 360.
	if r >= 360 {
		r = 0
	}
	return r
}
