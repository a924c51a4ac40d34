package googlemaps

import (
	"context"
	"fmt"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

// MockRoutingProvider serves a fixed route per origin|destination pair.
type MockRoutingProvider struct {
	Routes map[string]ports.RouteResult
}

func (m *MockRoutingProvider) GetRoute(ctx context.Context, origin, destination string) (ports.RouteResult, error) {
	r, ok := m.Routes[origin+"|"+destination]
	if !ok {
		return ports.RouteResult{}, fmt.Errorf("no route %q -> %q: %w", origin, destination, ports.ErrRouteUnavailable)
	}
	return r, nil
}

// MockGeocoder resolves rounded coordinate keys from a fixed table and
// counts external calls, so tests can assert cache behavior.
type MockGeocoder struct {
	ByKey map[string]domain.CityState
	Calls int
}

func (m *MockGeocoder) Reverse(ctx context.Context, lat, lon float64) (domain.CityState, error) {
	m.Calls++
	cs, ok := m.ByKey[domain.Coordinates{Lat: lat, Lon: lon}.CacheKey()]
	if !ok {
		return domain.CityState{}, fmt.Errorf("no geocode result for (%f, %f)", lat, lon)
	}
	return cs, nil
}
