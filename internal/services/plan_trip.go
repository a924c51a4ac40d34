package services

import (
	"context"
	"errors"
	"fmt"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
	"log"
)

type PlanTripRequest struct {
	Start  string
	Finish string
}

// PlanTrip orchestrates one planning call: fetch the route, prefilter the
// station catalog, run the stop planner, and aggregate cost. The planner
// borrows the catalog and cache for the duration of the call and owns no
// persistent state.
func PlanTrip(
	ctx context.Context,
	req PlanTripRequest,
	cfg PlannerConfig,
	routing ports.RoutingProvider,
	source ports.StationSource,
	geo *GeoCache,
) (_ *domain.TripPlan, err error) {
	defer obs.Time(ctx, "services.PlanTrip")(&err)

	if req.Start == "" || req.Finish == "" {
		return nil, errors.New("plan trip: start and finish must be non-empty")
	}

	route, err := routing.GetRoute(ctx, req.Start, req.Finish)
	if err != nil {
		if errors.Is(err, ports.ErrRouteUnavailable) {
			return nil, fmt.Errorf("plan trip: %w", err)
		}
		return nil, fmt.Errorf("plan trip: get route %q -> %q: %w", req.Start, req.Finish, err)
	}

	plan := &domain.TripPlan{
		TotalDistanceMiles:  route.TotalDistanceMiles,
		EstimatedTravelTime: route.EstimatedTravelTime,
		Stops:               []domain.FuelStop{},
	}

	// A zero-length route needs no fuel and no waypoint math.
	if route.TotalDistanceMiles <= 0 {
		return plan, nil
	}

	cum, err := CumulativeDistances(route.Waypoints)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	stations, err := source.ListStations(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan trip: list stations: %w", err)
	}

	catalog := NewStationCatalog(stations).Prefilter(ctx, route.Waypoints, cum, geo, cfg.PrefilterProximityMiles)
	if catalog.Len() == 0 {
		return nil, fmt.Errorf("plan trip: %w", ErrNoUsableStations)
	}

	stops, truncated, err := PlanFuelStops(ctx, route.TotalDistanceMiles, route.Waypoints, cum, catalog, geo, cfg)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	plan.Stops = stops
	plan.Truncated = truncated
	plan.TotalFuelCost = TotalFuelCost(stops)

	if truncated {
		plan.Warnings = append(plan.Warnings,
			"no reachable station for part of the route; plan covers the first stops only")
	}
	if actual, expected, ok := CheckFuelCoverage(stops, route.TotalDistanceMiles, cfg.MilesPerGallon); !ok {
		log.Printf("fuel coverage mismatch actual_gal=%.2f expected_gal=%.2f", actual, expected)
		plan.Warnings = append(plan.Warnings,
			fmt.Sprintf("planned fuel covers %.1f of %.1f gallons needed for the full route", actual, expected))
	}

	return plan, nil
}
