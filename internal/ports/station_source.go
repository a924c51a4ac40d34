package ports

import (
	"context"
	"fuel-route-service/internal/domain"
)

// Port: a boundary for retrieving Station reference data from a data source.
// Records are pre-normalized at load time (see domain.Station).
type StationSource interface {
	// Retrieve all stations available for planning.
	ListStations(ctx context.Context) ([]domain.Station, error)
}
