package services

import "errors"

// Fatal planning errors surfaced to the boundary layer. Everything else
// (resolution failures, mid-route gaps under the default policy) degrades
// into a best-effort plan.
var (
	// ErrInsufficientWaypoints reports a route with fewer than two points.
	ErrInsufficientWaypoints = errors.New("route has fewer than two waypoints")

	// ErrNoStationNearOrigin reports that no station is reachable within
	// vehicle range from the start of the route.
	ErrNoStationNearOrigin = errors.New("no fuel station reachable from the route origin")

	// ErrNoUsableStations reports that the prefilter left no candidate
	// stations for the route.
	ErrNoUsableStations = errors.New("no usable fuel stations near the route")

	// ErrNoReachableStation reports a mid-route gap under the strict policy.
	ErrNoReachableStation = errors.New("no fuel station reachable from the last stop")
)
