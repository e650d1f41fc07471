package geo

import (
	"math"
	"testing"
)

func TestDistanceMeters_IdenticalPoints(t *testing.T) {
	cases := []struct {
		lat, lon float64
	}{
		{0, 0},
		{-3.2891, 114.6066},
		{89.9, 179.9},
		{-89.9, -179.9},
	}
	for _, c := range cases {
		got := DistanceMeters(c.lat, c.lon, c.lat, c.lon)
		if got != 0 {
			t.Errorf("DistanceMeters(%v, %v, same point) = %v, want 0", c.lat, c.lon, got)
		}
	}
}

func TestDistanceMeters_KnownDistances(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64 // meters
		tolerance              float64
	}{
		// One degree of latitude is ~111.19 km on the sphere used here.
		{"one degree latitude", 0, 0, 1, 0, 111195, 50},
		// One degree of longitude at the equator equals one degree of latitude.
		{"one degree longitude at equator", 0, 0, 0, 1, 111195, 50},
		// Banjarmasin office to a point ~150m north.
		{"office to nearby point", -3.2891, 114.6066, -3.28775, 114.6066, 150, 5},
	}
	for _, c := range cases {
		got := DistanceMeters(c.lat1, c.lon1, c.lat2, c.lon2)
		if math.Abs(got-c.want) > c.tolerance {
			t.Errorf("%s: DistanceMeters = %v, want %v ± %v", c.name, got, c.want, c.tolerance)
		}
	}
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	d1 := DistanceMeters(-3.2891, 114.6066, -3.30, 114.62)
	d2 := DistanceMeters(-3.30, 114.62, -3.2891, 114.6066)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestIsWithinFence(t *testing.T) {
	officeLat, officeLon := -3.2891, 114.6066

	// Office coordinates themselves are inside any positive radius.
	for _, radius := range []float64{0.001, 1, 100, 10000} {
		if !IsWithinFence(officeLat, officeLon, officeLat, officeLon, radius) {
			t.Errorf("IsWithinFence(office, office, %v) = false, want true", radius)
		}
	}

	// ~150m north of the office: outside a 100m fence, inside a 200m fence.
	lat := -3.28775
	if IsWithinFence(lat, officeLon, officeLat, officeLon, 100) {
		t.Errorf("point ~150m away reported inside 100m fence")
	}
	if !IsWithinFence(lat, officeLon, officeLat, officeLon, 200) {
		t.Errorf("point ~150m away reported outside 200m fence")
	}
}
