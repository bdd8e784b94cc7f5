package geomath

import "math"

// Coordinate is a WGS84 latitude/longitude pair. Accuracy is the radius of
// uncertainty in meters when the coordinate came from a device fix; it is
// zero for fixed reference points (hotels, venues).
//
// An unknown position is represented by a nil *Coordinate, never by the
// zero value: (0, 0) is a real place in the Gulf of Guinea.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy,omitempty"`
}

// Valid reports whether the coordinate holds finite values inside the
// WGS84 domain (lat in [-90, 90], lon in [-180, 180]).
func (c *Coordinate) Valid() bool {
	if c == nil {
		return false
	}
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) {
		return false
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
