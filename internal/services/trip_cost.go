package services

import (
	"errors"
	"fmt"
	"math"

	"fuel-route-service/internal/domain"
)

// ErrInvalidInput marks calculation inputs rejected before any computation.
var ErrInvalidInput = errors.New("invalid input")

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateTripCost converts route distance, vehicle efficiency and a fuel
// price into fuel needed, total cost and cost per mile. Pure function; the
// returned TripCost carries no refuel plan (see PlanRefuelStops).
func CalculateTripCost(
	route domain.RouteInfo,
	vehicle domain.VehicleInfo,
	price domain.FuelPrice,
) (domain.TripCost, error) {
	if vehicle.FuelEfficiency <= 0 {
		return domain.TripCost{}, fmt.Errorf(
			"calculate trip cost: fuel efficiency %v must be positive: %w",
			vehicle.FuelEfficiency, ErrInvalidInput,
		)
	}

	if price.PricePerUnit <= 0 {
		return domain.TripCost{}, fmt.Errorf(
			"calculate trip cost: price %v must be positive: %w",
			price.PricePerUnit, ErrInvalidInput,
		)
	}

	var fuelNeeded float64
	switch vehicle.Unit {
	case domain.UnitLPer100Km:
		fuelNeeded = (route.DistanceKm() / 100) * vehicle.FuelEfficiency
	case domain.UnitMpg, "":
		fuelNeeded = route.DistanceMiles() / vehicle.FuelEfficiency
	default:
		return domain.TripCost{}, fmt.Errorf(
			"calculate trip cost: unknown efficiency unit %q: %w",
			vehicle.Unit, ErrInvalidInput,
		)
	}

	totalCost := fuelNeeded * price.PricePerUnit

	cost := domain.TripCost{
		Route:      route,
		Vehicle:    vehicle,
		FuelNeeded: round2(fuelNeeded),
		TotalCost:  round2(totalCost),
	}

	// Cost per mile is undefined for a zero-length route; leave it absent
	// rather than dividing by zero.
	if miles := route.DistanceMiles(); miles > 0 {
		perMile := round2(totalCost / miles)
		cost.CostPerMile = &perMile
	}

	return cost, nil
}
