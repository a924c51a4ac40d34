package services

import (
	"context"
	"fuel-route-service/internal/adapters/googlemaps"
	"fuel-route-service/internal/domain"
	"testing"
)

// mapGeocodeStore is an in-memory GeocodeStore for tests.
type mapGeocodeStore struct {
	entries map[string]domain.CityState
	puts    int
}

func newMapGeocodeStore() *mapGeocodeStore {
	return &mapGeocodeStore{entries: make(map[string]domain.CityState)}
}

func (m *mapGeocodeStore) Get(ctx context.Context, key string) (domain.CityState, bool, error) {
	cs, ok := m.entries[key]
	return cs, ok, nil
}

func (m *mapGeocodeStore) Put(ctx context.Context, key string, cs domain.CityState) error {
	m.puts++
	m.entries[key] = cs
	return nil
}

func TestGeoCacheResolveIdempotent(t *testing.T) {
	amarillo := domain.CityState{City: "amarillo", State: "TX"}
	provider := &googlemaps.MockGeocoder{ByKey: map[string]domain.CityState{
		domain.Coordinates{Lat: 35.2220, Lon: -101.8313}.CacheKey(): amarillo,
	}}
	geo := NewGeoCache(provider, nil)

	first := geo.Resolve(context.Background(), 35.2220, -101.8313)
	second := geo.Resolve(context.Background(), 35.2220, -101.8313)

	if first != amarillo || second != amarillo {
		t.Fatalf("resolutions = %+v, %+v; want amarillo both times", first, second)
	}
	if provider.Calls != 1 {
		t.Fatalf("provider calls = %d, want 1 (second resolve must hit the cache)", provider.Calls)
	}
}

func TestGeoCacheRoundedKeySharing(t *testing.T) {
	amarillo := domain.CityState{City: "amarillo", State: "TX"}
	provider := &googlemaps.MockGeocoder{ByKey: map[string]domain.CityState{
		domain.Coordinates{Lat: 35.2220, Lon: -101.8313}.CacheKey(): amarillo,
	}}
	geo := NewGeoCache(provider, nil)

	// Differ past the 4th decimal: same rounded key, one external call.
	geo.Resolve(context.Background(), 35.22201, -101.83131)
	geo.Resolve(context.Background(), 35.22199, -101.83129)

	if provider.Calls != 1 {
		t.Fatalf("provider calls = %d, want 1", provider.Calls)
	}
}

func TestGeoCacheCachesUnresolved(t *testing.T) {
	provider := &googlemaps.MockGeocoder{} // every lookup fails
	store := newMapGeocodeStore()
	geo := NewGeoCache(provider, store)

	first := geo.Resolve(context.Background(), 44.0, -110.0)
	second := geo.Resolve(context.Background(), 44.0, -110.0)

	if first.Resolved() || second.Resolved() {
		t.Fatalf("resolutions = %+v, %+v; want unresolved", first, second)
	}
	if provider.Calls != 1 {
		t.Fatalf("provider calls = %d, want 1 (failures are cached too)", provider.Calls)
	}
	if store.puts != 0 {
		t.Fatalf("store puts = %d; unresolved entries must not be persisted", store.puts)
	}
}

func TestGeoCachePersistentStore(t *testing.T) {
	key := domain.Coordinates{Lat: 35.2220, Lon: -101.8313}.CacheKey()
	amarillo := domain.CityState{City: "amarillo", State: "TX"}

	provider := &googlemaps.MockGeocoder{ByKey: map[string]domain.CityState{key: amarillo}}
	store := newMapGeocodeStore()

	geo := NewGeoCache(provider, store)
	geo.Resolve(context.Background(), 35.2220, -101.8313)

	if store.puts != 1 {
		t.Fatalf("store puts = %d, want 1", store.puts)
	}

	// A fresh process (new in-memory cache, same store) resolves without
	// touching the provider.
	fresh := NewGeoCache(provider, store)
	if cs := fresh.Resolve(context.Background(), 35.2220, -101.8313); cs != amarillo {
		t.Fatalf("resolution = %+v, want amarillo", cs)
	}
	if provider.Calls != 1 {
		t.Fatalf("provider calls = %d, want 1 (store hit must skip the provider)", provider.Calls)
	}
}
