package geomath

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
)

var (
	osaka = &Coordinate{Latitude: 34.6687, Longitude: 135.5013}
	kyoto = &Coordinate{Latitude: 34.9833, Longitude: 135.7594}
)

func TestDistanceMetersNilInputs(t *testing.T) {
	if _, ok := DistanceMeters(nil, kyoto); ok {
		t.Error("expected no distance for nil first coordinate")
	}
	if _, ok := DistanceMeters(osaka, nil); ok {
		t.Error("expected no distance for nil second coordinate")
	}
	if _, ok := DistanceMeters(nil, nil); ok {
		t.Error("expected no distance for two nil coordinates")
	}
}

func TestDistanceMetersIdenticalPoints(t *testing.T) {
	d, ok := DistanceMeters(osaka, osaka)
	if !ok {
		t.Fatal("expected a distance for identical coordinates")
	}
	if d != 0 {
		t.Errorf("distance between identical points: got %v want 0", d)
	}
	if math.IsNaN(d) {
		t.Error("distance between identical points must not be NaN")
	}
}

func TestDistanceMetersSymmetry(t *testing.T) {
	pairs := []struct {
		name string
		a, b *Coordinate
	}{
		{"osaka-kyoto", osaka, kyoto},
		{"equator-pole", &Coordinate{Latitude: 0, Longitude: 0}, &Coordinate{Latitude: 90, Longitude: 0}},
		{"dateline", &Coordinate{Latitude: 10, Longitude: 179.9}, &Coordinate{Latitude: 10, Longitude: -179.9}},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			ab, okAB := DistanceMeters(tt.a, tt.b)
			ba, okBA := DistanceMeters(tt.b, tt.a)
			if !okAB || !okBA {
				t.Fatal("expected distances in both directions")
			}
			if ab != ba {
				t.Errorf("distance not symmetric: %v vs %v", ab, ba)
			}
			if ab < 0 || math.IsNaN(ab) || math.IsInf(ab, 0) {
				t.Errorf("distance must be non-negative and finite, got %v", ab)
			}
		})
	}
}

func TestDistanceMetersAntipodalPoints(t *testing.T) {
	a := &Coordinate{Latitude: 0, Longitude: 0}
	b := &Coordinate{Latitude: 0, Longitude: 180}

	d, ok := DistanceMeters(a, b)
	if !ok {
		t.Fatal("expected a distance for antipodal coordinates")
	}
	if math.IsNaN(d) || math.IsInf(d, 0) {
		t.Fatalf("antipodal distance must be finite, got %v", d)
	}

	// Half the Earth's circumference, within a meter.
	want := math.Pi * earthRadiusInMeters
	if math.Abs(d-want) > 1 {
		t.Errorf("antipodal distance: got %v want %v", d, want)
	}
}

// TestDistanceMetersOsakaKyoto checks the Osaka to Kyoto fixture against
// the s2 great-circle reference used elsewhere in this codebase's lineage.
func TestDistanceMetersOsakaKyoto(t *testing.T) {
	d, ok := DistanceMeters(osaka, kyoto)
	if !ok {
		t.Fatal("expected a distance")
	}

	if d < 36000 || d > 37000 {
		t.Errorf("Osaka-Kyoto distance: got %vm, want roughly 36.0-37.0km", d)
	}

	p1 := s2.LatLngFromDegrees(osaka.Latitude, osaka.Longitude)
	p2 := s2.LatLngFromDegrees(kyoto.Latitude, kyoto.Longitude)
	ref := p1.Distance(p2).Radians() * earthRadiusInMeters

	if math.Abs(d-ref) > 500 {
		t.Errorf("haversine diverges from s2 reference: got %v ref %v", d, ref)
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		meters float64
		want   string
	}{
		{0, "0m"},
		{349.6, "350m"},
		{999, "999m"},
		{1000, "1.0km"},
		{1200, "1.2km"},
		{1549, "1.5km"},
		{36500, "36.5km"},
	}

	for _, tt := range tests {
		if got := FormatDistance(tt.meters); got != tt.want {
			t.Errorf("FormatDistance(%v): got %q want %q", tt.meters, got, tt.want)
		}
	}
}

func TestEstimateWalkingTime(t *testing.T) {
	tests := []struct {
		meters float64
		want   string
	}{
		{0, "less than a minute"},
		{40, "less than a minute"},
		{83, "1 min"},
		{83 * 30, "30 min"},
		{83 * 59, "59 min"},
		{83 * 60, "1h 0m"},
		{83 * 65, "1h 5m"},
		{83 * 125, "2h 5m"},
	}

	for _, tt := range tests {
		if got := EstimateWalkingTime(tt.meters); got != tt.want {
			t.Errorf("EstimateWalkingTime(%v): got %q want %q", tt.meters, got, tt.want)
		}
	}
}

func TestCoordinateValid(t *testing.T) {
	tests := []struct {
		name  string
		coord *Coordinate
		want  bool
	}{
		{"nil", nil, false},
		{"osaka", osaka, true},
		{"lat too high", &Coordinate{Latitude: 90.1, Longitude: 0}, false},
		{"lon too low", &Coordinate{Latitude: 0, Longitude: -180.5}, false},
		{"nan lat", &Coordinate{Latitude: math.NaN(), Longitude: 0}, false},
		{"inf lon", &Coordinate{Latitude: 0, Longitude: math.Inf(1)}, false},
		{"extremes", &Coordinate{Latitude: -90, Longitude: 180}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coord.Valid(); got != tt.want {
				t.Errorf("Valid(): got %v want %v", got, tt.want)
			}
		})
	}
}
