package ports

import (
	"context"
	"fuel-route-service/internal/domain"
)

// Persistent backing store for coordinate -> city/state resolutions.
// Sits behind the in-memory GeoCache so successful resolutions survive
// restarts. Unresolved sentinels are kept in memory only.
type GeocodeStore interface {
	// Get returns the stored resolution and whether the key was present.
	Get(ctx context.Context, key string) (domain.CityState, bool, error)
	// Put stores a successful resolution.
	Put(ctx context.Context, key string, cs domain.CityState) error
}
