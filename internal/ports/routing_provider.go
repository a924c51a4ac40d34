package ports

import (
	"context"
	"errors"
	"fuel-route-service/internal/domain"
)

// ErrRouteUnavailable reports that the routing provider returned no usable
// route between the requested locations. Fatal to planning.
var ErrRouteUnavailable = errors.New("routing provider returned no usable route")

// A driving route between two locations.
type RouteResult struct {
	TotalDistanceMiles  float64
	EstimatedTravelTime string
	Waypoints           []domain.Coordinates
}

// Contract for retrieving route geometry and total distance.
type RoutingProvider interface {
	// Return the driving route from origin to destination.
	// Implementations return ErrRouteUnavailable (possibly wrapped) when the
	// provider has no route for the pair.
	GetRoute(ctx context.Context, origin string, destination string) (RouteResult, error)
}
