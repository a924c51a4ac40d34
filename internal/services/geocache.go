package services

import (
	"context"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
	"log"

	"github.com/bluele/gcache"
)

// In-memory entries are plenty for one process: a cross-country polyline
// rounds to a few thousand distinct keys.
const geoCacheSize = 65536

// GeoCache memoizes coordinate -> (city, state) resolutions so a coordinate
// is reverse-geocoded at most once per process, including coordinates that
// failed to resolve. Keys are 4-decimal-rounded coordinates.
//
// Lookups go memory -> persistent store -> provider; resolved results are
// written back through both layers, unresolved sentinels only to memory.
// The cache is safe for concurrent use; entries are idempotent, so racing
// writers converging on the same key is benign.
type GeoCache struct {
	mem      gcache.Cache
	store    ports.GeocodeStore
	provider ports.GeocodingProvider
}

// NewGeoCache builds a cache around the given provider. store may be nil
// when no persistent layer is configured.
func NewGeoCache(provider ports.GeocodingProvider, store ports.GeocodeStore) *GeoCache {
	return &GeoCache{
		mem:      gcache.New(geoCacheSize).LRU().Build(),
		store:    store,
		provider: provider,
	}
}

// Resolve returns the city/state for the given coordinates, or the
// unresolved zero value. Provider failures (timeout, malformed response,
// no result) are cached as unresolved and never propagated: resolution
// failure is an expected outcome the planner handles by skipping the
// waypoint.
func (g *GeoCache) Resolve(ctx context.Context, lat, lon float64) domain.CityState {
	key := domain.Coordinates{Lat: lat, Lon: lon}.CacheKey()

	if v, err := g.mem.Get(key); err == nil {
		return v.(domain.CityState)
	}

	if g.store != nil {
		cs, ok, err := g.store.Get(ctx, key)
		if err != nil {
			log.Printf("geocode store read failed key=%s err=%v", key, err)
		} else if ok {
			_ = g.mem.Set(key, cs)
			return cs
		}
	}

	cs, err := g.provider.Reverse(ctx, lat, lon)
	if err != nil {
		log.Printf("reverse geocode failed key=%s err=%v", key, err)
		cs = domain.CityState{}
	}

	_ = g.mem.Set(key, cs)

	// Unresolved sentinels stay in memory only: a transient provider outage
	// must not poison the persistent store across restarts.
	if g.store != nil && cs.Resolved() {
		if err := g.store.Put(ctx, key, cs); err != nil {
			log.Printf("geocode store write failed key=%s err=%v", key, err)
		}
	}

	return cs
}
