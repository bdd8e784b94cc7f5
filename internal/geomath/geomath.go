// Package geomath provides pure geometric and unit-conversion helpers:
// great-circle distance between coordinates, human-readable distance
// formatting, and coarse walking-time estimation. It performs no I/O and
// holds no state.
package geomath

import (
	"fmt"
	"math"
)

// earthRadiusInMeters is the Earth's volumetric mean radius, commonly used
// for spherical distance approximations.
//
// Reference: NASA Planetary Fact Sheet – Earth
// https://nssdc.gsfc.nasa.gov/planetary/factsheet/earthfact.html
const earthRadiusInMeters = 6371000

// walkingMetersPerMinute assumes a constant 5 km/h pace, truncated to a
// whole number of meters per minute.
const walkingMetersPerMinute = 83

// DistanceMeters returns the great-circle distance between a and b using
// the haversine formula. A missing coordinate is a normal case (the user
// has not granted location yet), so it yields ok == false rather than an
// error or a zero distance.
func DistanceMeters(a, b *Coordinate) (float64, bool) {
	if a == nil || b == nil {
		return 0, false
	}

	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// Floating rounding can push h a hair outside [0, 1], which would turn
	// identical or antipodal points into NaN inside the square roots.
	if h < 0 {
		h = 0
	} else if h > 1 {
		h = 1
	}

	return 2 * earthRadiusInMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h)), true
}

// FormatDistance renders a distance for display: integer meters below one
// kilometer ("350m"), kilometers to one decimal place at or above it
// ("1.2km").
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%dm", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1fkm", meters/1000)
}

// EstimateWalkingTime renders a coarse walking-time estimate at a constant
// 5 km/h. This is deliberately not routing-engine output: no paths, no
// elevation, no obstacles.
func EstimateWalkingTime(meters float64) string {
	minutes := int(math.Round(meters / walkingMetersPerMinute))
	switch {
	case minutes < 1:
		return "less than a minute"
	case minutes < 60:
		return fmt.Sprintf("%d min", minutes)
	default:
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
}
