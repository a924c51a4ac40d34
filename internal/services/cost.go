package services

import (
	"fuel-route-service/internal/domain"
	"math"
)

// Gallons slack tolerated before a plan is flagged as not covering the
// whole route (a truncated plan, not a defect).
const fuelMismatchToleranceGallons = 1.0

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TotalFuelCost sums per-stop cost, rounded to 2 decimal places.
// An empty plan costs 0.
func TotalFuelCost(stops []domain.FuelStop) float64 {
	total := 0.0
	for _, s := range stops {
		total += s.Cost
	}
	return round2(total)
}

// CheckFuelCoverage compares the gallons actually planned against what the
// full route would need. Returns ok=false with the expected/actual pair when
// the shortfall exceeds tolerance; callers log it as a warning, never fail.
func CheckFuelCoverage(stops []domain.FuelStop, totalDistance, milesPerGallon float64) (actual, expected float64, ok bool) {
	for _, s := range stops {
		actual += s.FuelGallons
	}
	expected = totalDistance / milesPerGallon
	return actual, expected, math.Abs(expected-actual) <= fuelMismatchToleranceGallons
}
