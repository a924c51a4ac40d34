package services

import (
	"fuel-route-service/internal/domain"
	"testing"
)

func TestTotalFuelCostEmpty(t *testing.T) {
	if got := TotalFuelCost(nil); got != 0 {
		t.Fatalf("TotalFuelCost(nil) = %f, want 0", got)
	}
	if got := TotalFuelCost([]domain.FuelStop{}); got != 0 {
		t.Fatalf("TotalFuelCost([]) = %f, want 0", got)
	}
}

func TestTotalFuelCostRounding(t *testing.T) {
	stops := []domain.FuelStop{
		{Cost: 132.004},
		{Cost: 131.999},
	}
	if got := TotalFuelCost(stops); got != 264.00 {
		t.Fatalf("total = %f, want 264.00", got)
	}
}

func TestCheckFuelCoverage(t *testing.T) {
	stops := []domain.FuelStop{{FuelGallons: 44}, {FuelGallons: 44}}

	if _, _, ok := CheckFuelCoverage(stops, 880, 10); !ok {
		t.Fatal("exact coverage should pass")
	}

	actual, expected, ok := CheckFuelCoverage(stops, 900, 10)
	if ok {
		t.Fatal("a 2-gallon shortfall should be flagged")
	}
	if actual != 88 || expected != 90 {
		t.Fatalf("actual=%f expected=%f, want 88/90", actual, expected)
	}
}
