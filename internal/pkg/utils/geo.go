package utils

import "math"

// ValidateCoordinates checks WGS84 bounds.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Round2 rounds to two decimal places, the precision used for distances and
// average ratings on the wire.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
