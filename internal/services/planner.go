package services

import (
	"context"
	"fuel-route-service/internal/domain"
	"log"
)

// PlannerConfig holds the physical and policy constants for one planning
// run. All values are externally configurable (see internal/config).
type PlannerConfig struct {
	// Maximum single-leg distance on a full tank.
	VehicleRangeMiles float64
	// Fixed fuel economy constant.
	MilesPerGallon float64
	// Price substituted when a station record has none.
	FallbackPricePerGallon float64
	// Station-to-route distance bound for the catalog prefilter.
	PrefilterProximityMiles float64
	// When true, a mid-route gap fails the whole plan with
	// ErrNoReachableStation instead of truncating it.
	StrictMidRoute bool
}

// PlanFuelStops selects refueling stops along the route using a greedy
// interval-covering scan.
//
// From the current position it scans waypoints forward through the reachable
// window (current position exclusive, current + vehicle range inclusive,
// capped at the route total), resolves each waypoint's city/state through
// the GeoCache, and takes the first unused station matching a resolved
// city/state. First match within range is the selection policy: not nearest,
// not cheapest. Unresolved waypoints are skipped. Fuel for each stop covers
// the leg driven to reach it.
//
// Invariants: every leg <= cfg.VehicleRangeMiles; no station name repeats;
// the cursor strictly increases each stop. A run with no match from mile 0
// fails with ErrNoStationNearOrigin. A gap after the first stop truncates
// the plan (returned with truncated=true) or, under StrictMidRoute, fails
// with ErrNoReachableStation.
func PlanFuelStops(
	ctx context.Context,
	totalDistance float64,
	waypoints []domain.Coordinates,
	cum []float64,
	catalog *StationCatalog,
	geo *GeoCache,
	cfg PlannerConfig,
) (stops []domain.FuelStop, truncated bool, err error) {
	stops = []domain.FuelStop{}
	if totalDistance <= 0 {
		return stops, false, nil
	}

	milesTraveled := 0.0
	used := make(map[string]bool)

	for milesTraveled < totalDistance {
		maxReach := milesTraveled + cfg.VehicleRangeMiles
		if maxReach > totalDistance {
			maxReach = totalDistance
		}

		match, matchMiles, found := scanWindow(ctx, milesTraveled, maxReach, waypoints, cum, catalog, geo, used)
		if !found {
			if milesTraveled == 0 {
				return nil, false, ErrNoStationNearOrigin
			}
			if cfg.StrictMidRoute {
				return nil, false, ErrNoReachableStation
			}
			log.Printf("plan fuel stops: no station between mile %.1f and %.1f, truncating plan", milesTraveled, maxReach)
			return stops, true, nil
		}

		used[match.Name] = true

		legMiles := matchMiles - milesTraveled
		gallons := legMiles / cfg.MilesPerGallon
		price := match.PricePerGallon
		if price <= 0 {
			price = cfg.FallbackPricePerGallon
		}

		stops = append(stops, domain.FuelStop{
			Station:         match,
			MilesFromOrigin: matchMiles,
			FuelGallons:     round2(gallons),
			PricePerGallon:  round2(price),
			Cost:            round2(gallons * price),
		})

		milesTraveled = matchMiles
	}

	return stops, false, nil
}

// scanWindow walks waypoints whose cumulative distance lies in
// (fromMiles, toMiles] and returns the first unused station matching a
// resolved waypoint city. The lower bound is exclusive so a successful scan
// always advances the cursor.
func scanWindow(
	ctx context.Context,
	fromMiles, toMiles float64,
	waypoints []domain.Coordinates,
	cum []float64,
	catalog *StationCatalog,
	geo *GeoCache,
	used map[string]bool,
) (domain.Station, float64, bool) {
	for i, d := range cum {
		if d <= fromMiles {
			continue
		}
		if d > toMiles {
			break
		}

		cs := geo.Resolve(ctx, waypoints[i].Lat, waypoints[i].Lon)
		if !cs.Resolved() {
			continue
		}

		if s, ok := catalog.FirstMatch(cs, used); ok {
			return s, d, true
		}
	}
	return domain.Station{}, 0, false
}
