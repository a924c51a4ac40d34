package domain

// A single refueling stop selected by the planner.
// MilesFromOrigin is the cumulative route distance at the stop;
// FuelGallons and Cost cover the leg driven to reach it.
// Immutable once appended to a TripPlan.
type FuelStop struct {
	Station         Station
	MilesFromOrigin float64
	FuelGallons     float64
	PricePerGallon  float64
	Cost            float64
}

// The planned trip returned by one planning call.
//
// EstimatedTravelTime is the routing provider's human-readable duration and
// is passed through opaquely. Warnings carries non-fatal degradations
// (truncated plan, fuel-total mismatch); an empty slice means a full plan.
type TripPlan struct {
	TotalDistanceMiles  float64
	EstimatedTravelTime string
	Stops               []FuelStop
	TotalFuelCost       float64
	Truncated           bool
	Warnings            []string
}
