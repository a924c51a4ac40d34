package services

import (
	"fuel-route-service/internal/domain"

	"github.com/golang/geo/s2"
)

const earthRadiusMiles = 3958.8

// GreatCircleMiles returns the great-circle distance between two waypoints.
// Straight-line, not road distance; the accepted approximation for
// consecutive polyline samples.
func GreatCircleMiles(a, b domain.Coordinates) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p1.Distance(p2).Radians() * earthRadiusMiles
}

// CumulativeDistances returns the running great-circle total at each
// waypoint, starting at 0 for the first. Pure, no external calls.
func CumulativeDistances(waypoints []domain.Coordinates) ([]float64, error) {
	if len(waypoints) < 2 {
		return nil, ErrInsufficientWaypoints
	}

	cum := make([]float64, len(waypoints))
	for i := 1; i < len(waypoints); i++ {
		cum[i] = cum[i-1] + GreatCircleMiles(waypoints[i-1], waypoints[i])
	}
	return cum, nil
}

// WaypointAtOrBefore returns the index of the last waypoint whose cumulative
// distance is <= targetMiles. A target at or below zero maps to the first
// waypoint; a target beyond the route maps to the last (callers treat this
// as "reached the end", not an error).
func WaypointAtOrBefore(targetMiles float64, cum []float64) int {
	if targetMiles <= 0 {
		return 0
	}

	last := 0
	for i, d := range cum {
		if d > targetMiles {
			break
		}
		last = i
	}
	return last
}
