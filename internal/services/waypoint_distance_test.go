package services

import (
	"fuel-route-service/internal/domain"
	"math"
	"testing"
)

// One degree of latitude along a meridian in great-circle miles.
const milesPerLatDegree = earthRadiusMiles * math.Pi / 180

// meridianRoute builds waypoints spaced stepMiles apart going due north, so
// cumulative distances are known exactly.
func meridianRoute(startLat, lon, stepMiles float64, count int) []domain.Coordinates {
	wps := make([]domain.Coordinates, count)
	for i := range wps {
		wps[i] = domain.Coordinates{
			Lat: startLat + float64(i)*stepMiles/milesPerLatDegree,
			Lon: lon,
		}
	}
	return wps
}

func TestCumulativeDistancesMeridian(t *testing.T) {
	wps := meridianRoute(30, -95, 50, 5)

	cum, err := CumulativeDistances(wps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cum) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(cum))
	}
	if cum[0] != 0 {
		t.Fatalf("first entry = %f, want 0", cum[0])
	}
	for i, want := range []float64{0, 50, 100, 150, 200} {
		if math.Abs(cum[i]-want) > 0.01 {
			t.Fatalf("cum[%d] = %f, want ~%f", i, cum[i], want)
		}
	}
}

func TestCumulativeDistancesInsufficientWaypoints(t *testing.T) {
	for _, wps := range [][]domain.Coordinates{nil, {{Lat: 30, Lon: -95}}} {
		if _, err := CumulativeDistances(wps); err != ErrInsufficientWaypoints {
			t.Fatalf("expected ErrInsufficientWaypoints, got %v", err)
		}
	}
}

func TestWaypointAtOrBefore(t *testing.T) {
	cum := []float64{0, 50, 100, 150, 200}

	tests := []struct {
		target float64
		want   int
	}{
		{-10, 0},
		{0, 0},
		{49.9, 0},
		{50, 1},
		{120, 2},
		{200, 4},
		{5000, 4}, // beyond the route means "reached the end"
	}

	for _, tt := range tests {
		if got := WaypointAtOrBefore(tt.target, cum); got != tt.want {
			t.Errorf("WaypointAtOrBefore(%f) = %d, want %d", tt.target, got, tt.want)
		}
	}
}

func TestGreatCircleMilesKnownPair(t *testing.T) {
	// Dallas to Oklahoma City, roughly 175 road-agnostic miles.
	dallas := domain.Coordinates{Lat: 32.7767, Lon: -96.7970}
	okc := domain.Coordinates{Lat: 35.4676, Lon: -97.5164}

	d := GreatCircleMiles(dallas, okc)
	if d < 180 || d > 195 {
		t.Fatalf("distance = %f, want within [180, 195]", d)
	}

	if GreatCircleMiles(dallas, dallas) != 0 {
		t.Fatal("distance from a point to itself should be 0")
	}
}
