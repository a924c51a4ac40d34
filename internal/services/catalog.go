package services

import (
	"context"
	"fuel-route-service/internal/domain"
	"log"
	"math"

	"github.com/dhconnelly/rtreego"
)

// Waypoints are sampled at this spacing when resolving cities for the
// coordinate-less prefilter path, bounding the number of geocode lookups.
const prefilterSampleMiles = 50.0

// StationCatalog is an in-memory, normalized view of the station set.
// Stations keep catalog order within a city, so "first match" is
// deterministic across runs.
type StationCatalog struct {
	byCityState map[string][]domain.Station
	stations    []domain.Station
}

// NewStationCatalog indexes stations by normalized city/state. Input records
// are normalized defensively in case a source skipped it.
func NewStationCatalog(stations []domain.Station) *StationCatalog {
	c := &StationCatalog{
		byCityState: make(map[string][]domain.Station, len(stations)),
		stations:    make([]domain.Station, 0, len(stations)),
	}

	for _, s := range stations {
		cs := domain.NormalizeCityState(s.City, s.State)
		s.City, s.State = cs.City, cs.State
		c.stations = append(c.stations, s)
		c.byCityState[cs.Key()] = append(c.byCityState[cs.Key()], s)
	}
	return c
}

// Len returns the number of stations in the catalog.
func (c *StationCatalog) Len() int { return len(c.stations) }

// FirstMatch returns the first station in the given city/state whose name is
// not in used, or false when none matches. First catalog order wins: not
// nearest, not cheapest.
func (c *StationCatalog) FirstMatch(cs domain.CityState, used map[string]bool) (domain.Station, bool) {
	for _, s := range c.byCityState[cs.Key()] {
		if !used[s.Name] {
			return s, true
		}
	}
	return domain.Station{}, false
}

// CityStates returns the distinct normalized city/state pairs in the
// catalog, in first-seen order.
func (c *StationCatalog) CityStates() []domain.CityState {
	seen := make(map[string]bool, len(c.byCityState))
	out := make([]domain.CityState, 0, len(c.byCityState))
	for _, s := range c.stations {
		key := s.LookupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, domain.CityState{City: s.City, State: s.State})
	}
	return out
}

// stationEntry adapts a station to the R-tree's Spatial interface.
type stationEntry struct {
	rect    *rtreego.Rect
	station domain.Station
}

func (e *stationEntry) Bounds() *rtreego.Rect { return e.rect }

// Prefilter reduces the catalog to stations plausibly reachable from the
// route, bounding later lookup cost in the planner.
//
// Stations with coordinates are kept when within proximityMiles of any
// waypoint, found via an R-tree over station points with an exact
// great-circle check on candidates. Stations without coordinates fall back
// to a city/state match against waypoints sampled every ~50 miles and
// resolved through the GeoCache (the expensive path the prefilter exists to
// bound).
//
// An empty result is valid and means "no usable stations for this route";
// callers must treat it as a planning failure, not a silent empty plan.
func (c *StationCatalog) Prefilter(
	ctx context.Context,
	waypoints []domain.Coordinates,
	cum []float64,
	geo *GeoCache,
	proximityMiles float64,
) *StationCatalog {
	tree := rtreego.NewTree(2, 2, 16)
	withoutCoords := make([]domain.Station, 0)

	for _, s := range c.stations {
		if s.Coordinates == nil {
			withoutCoords = append(withoutCoords, s)
			continue
		}
		p := rtreego.Point{s.Coordinates.Lon, s.Coordinates.Lat}
		rect := p.ToRect(0.0001)
		tree.Insert(&stationEntry{rect: rect, station: s})
	}

	kept := make([]domain.Station, 0)
	keptNames := make(map[string]bool)

	for _, wp := range waypoints {
		for _, sp := range tree.SearchIntersect(searchRect(wp, proximityMiles)) {
			entry := sp.(*stationEntry)
			if keptNames[entry.station.Name] {
				continue
			}
			if GreatCircleMiles(wp, *entry.station.Coordinates) <= proximityMiles {
				keptNames[entry.station.Name] = true
				kept = append(kept, entry.station)
			}
		}
	}

	if len(withoutCoords) > 0 {
		routeCities := c.sampledCities(ctx, waypoints, cum, geo)
		for _, s := range withoutCoords {
			if keptNames[s.Name] || !routeCities[s.LookupKey()] {
				continue
			}
			keptNames[s.Name] = true
			kept = append(kept, s)
		}
	}

	log.Printf("prefilter stations=%d kept=%d proximity_miles=%.0f", len(c.stations), len(kept), proximityMiles)
	return NewStationCatalog(kept)
}

// sampledCities resolves the city/state of waypoints spaced ~50 route miles
// apart and returns the set of lookup keys seen along the route.
func (c *StationCatalog) sampledCities(
	ctx context.Context,
	waypoints []domain.Coordinates,
	cum []float64,
	geo *GeoCache,
) map[string]bool {
	cities := make(map[string]bool)
	total := cum[len(cum)-1]

	for miles := 0.0; ; miles += prefilterSampleMiles {
		idx := WaypointAtOrBefore(miles, cum)
		wp := waypoints[idx]
		if cs := geo.Resolve(ctx, wp.Lat, wp.Lon); cs.Resolved() {
			cities[cs.Key()] = true
		}
		if miles >= total {
			break
		}
	}
	return cities
}

// searchRect builds a bounding box of +-miles around a waypoint in degree
// space. Slightly oversized near the poles; the exact distance check on
// candidates keeps the result correct.
func searchRect(wp domain.Coordinates, miles float64) *rtreego.Rect {
	latDelta := miles / 69.0
	cosLat := math.Cos(wp.Lat * math.Pi / 180)
	if cosLat < 0.1 {
		cosLat = 0.1
	}
	lonDelta := miles / (69.0 * cosLat)

	rect, err := rtreego.NewRect(
		rtreego.Point{wp.Lon - lonDelta, wp.Lat - latDelta},
		[]float64{2 * lonDelta, 2 * latDelta},
	)
	if err != nil {
		// Only reachable with non-positive lengths, which the math above
		// cannot produce; fall back to a degenerate point rect.
		return rtreego.Point{wp.Lon, wp.Lat}.ToRect(0.0001)
	}
	return rect
}
