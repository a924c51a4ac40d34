package ports

import (
	"context"
	"fuel-route-service/internal/domain"
)

// Contract for reverse geocoding coordinates to a city/state pair.
// Implementations must be idempotent and safe to call repeatedly for the
// same input; callers treat any error as an expected resolution failure.
type GeocodingProvider interface {
	Reverse(ctx context.Context, lat float64, lon float64) (domain.CityState, error)
}
