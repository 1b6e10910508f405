package vecpath

import "math"

// Radians converts an angle from degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts an angle from radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
