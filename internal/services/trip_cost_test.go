package services

import (
	"errors"
	"testing"

	"fuel-route-service/internal/domain"
)

func TestCalculateTripCostMpg(t *testing.T) {
	route := domain.RouteInfo{DistanceMeters: 160934} // ~100 miles
	vehicle := domain.VehicleInfo{FuelEfficiency: 25, Unit: domain.UnitMpg}
	price := domain.FuelPrice{PricePerUnit: 3.50, Currency: "USD"}

	cost, err := CalculateTripCost(route, vehicle, price)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cost.FuelNeeded != 4.00 {
		t.Fatalf("expected 4.00 gallons, got %v", cost.FuelNeeded)
	}
	if cost.TotalCost != 14.00 {
		t.Fatalf("expected total 14.00, got %v", cost.TotalCost)
	}
	if cost.CostPerMile == nil || *cost.CostPerMile != 0.14 {
		t.Fatalf("expected cost per mile 0.14, got %v", cost.CostPerMile)
	}
}

func TestCalculateTripCostLitersPer100Km(t *testing.T) {
	route := domain.RouteInfo{DistanceMeters: 100000} // 100 km
	vehicle := domain.VehicleInfo{FuelEfficiency: 8.0, Unit: domain.UnitLPer100Km}
	price := domain.FuelPrice{PricePerUnit: 1.50, Currency: "EUR"}

	cost, err := CalculateTripCost(route, vehicle, price)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cost.FuelNeeded != 8.00 {
		t.Fatalf("expected 8.00 liters, got %v", cost.FuelNeeded)
	}
	if cost.TotalCost != 12.00 {
		t.Fatalf("expected total 12.00, got %v", cost.TotalCost)
	}
}

func TestCalculateTripCostEmptyUnitDefaultsToMpg(t *testing.T) {
	route := domain.RouteInfo{DistanceMeters: 160934}
	vehicle := domain.VehicleInfo{FuelEfficiency: 25}
	price := domain.FuelPrice{PricePerUnit: 3.50}

	cost, err := CalculateTripCost(route, vehicle, price)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost.FuelNeeded != 4.00 {
		t.Fatalf("expected mpg semantics for empty unit, got %v gallons", cost.FuelNeeded)
	}
}

func TestCalculateTripCostZeroDistance(t *testing.T) {
	cost, err := CalculateTripCost(
		domain.RouteInfo{},
		domain.VehicleInfo{FuelEfficiency: 30, Unit: domain.UnitMpg},
		domain.FuelPrice{PricePerUnit: 4.00},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cost.FuelNeeded != 0 || cost.TotalCost != 0 {
		t.Fatalf("expected zero fuel and cost, got %v / %v", cost.FuelNeeded, cost.TotalCost)
	}
	if cost.CostPerMile != nil {
		t.Fatalf("cost per mile should be absent for a zero-length route, got %v", *cost.CostPerMile)
	}
}

func TestCalculateTripCostRejectsBadInput(t *testing.T) {
	route := domain.RouteInfo{DistanceMeters: 160934}

	_, err := CalculateTripCost(route, domain.VehicleInfo{FuelEfficiency: 0}, domain.FuelPrice{PricePerUnit: 3.50})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero efficiency, got %v", err)
	}

	_, err = CalculateTripCost(route, domain.VehicleInfo{FuelEfficiency: -5}, domain.FuelPrice{PricePerUnit: 3.50})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative efficiency, got %v", err)
	}

	_, err = CalculateTripCost(route, domain.VehicleInfo{FuelEfficiency: 25}, domain.FuelPrice{PricePerUnit: 0})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero price, got %v", err)
	}

	_, err = CalculateTripCost(route, domain.VehicleInfo{FuelEfficiency: 25, Unit: "furlongs"}, domain.FuelPrice{PricePerUnit: 3.50})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown unit, got %v", err)
	}
}
