package services

import (
	"fmt"
	"log"

	"fuel-route-service/internal/domain"
)

const (
	// DefaultSafetyBuffer refuels after consuming 75% of a full tank's
	// range, keeping a 25% margin.
	DefaultSafetyBuffer = 0.75
	// DefaultTankSizeGallons stands in when the vehicle's tank size was
	// never resolved.
	DefaultTankSizeGallons = 15.0
)

// PlanRefuelStops segments a route into refuel points based on vehicle
// range and a safety buffer. The plan always starts with an "initial" point
// at distance 0 and ends with a "final" point at the route's total
// distance; "range_limit" points in between mark where a stop is required.
//
// Per-leg distances drive the placement when the route carries legs;
// otherwise stops are spaced uniformly at safe-range intervals with their
// segment marked unknown. Pure computation over already-fetched route data.
func PlanRefuelStops(
	route domain.RouteInfo,
	vehicle domain.VehicleInfo,
	safetyBuffer float64,
) ([]domain.RefuelPoint, error) {
	if vehicle.FuelEfficiency <= 0 {
		return nil, fmt.Errorf(
			"plan refuel stops: fuel efficiency %v must be positive: %w",
			vehicle.FuelEfficiency, ErrInvalidInput,
		)
	}

	if safetyBuffer == 0 {
		safetyBuffer = DefaultSafetyBuffer
	}
	if safetyBuffer < 0 || safetyBuffer > 1 {
		return nil, fmt.Errorf(
			"plan refuel stops: safety buffer %v must be in (0, 1]: %w",
			safetyBuffer, ErrInvalidInput,
		)
	}

	tankSize := vehicle.TankSizeGallons
	if tankSize <= 0 {
		tankSize = DefaultTankSizeGallons
	}

	maxRange := vehicle.FuelEfficiency * tankSize
	safeRange := maxRange * safetyBuffer
	totalMiles := route.DistanceMiles()

	log.Printf(
		"refuel plan: mpg=%.1f tank=%.1f maxRange=%.1f safeRange=%.1f total=%.1f",
		vehicle.FuelEfficiency, tankSize, maxRange, safeRange, totalMiles,
	)

	points := []domain.RefuelPoint{{
		CumulativeDistanceMiles: 0,
		SegmentIndex:            0,
		PercentOfTrip:           0,
		Reason:                  domain.RefuelInitial,
	}}

	finalSegment := len(route.Legs)
	if len(route.Legs) == 0 {
		finalSegment = domain.SegmentUnknown
	}

	// Trip fits within the safe range on a single tank: no stops needed.
	if totalMiles <= safeRange {
		points = append(points, domain.RefuelPoint{
			CumulativeDistanceMiles: totalMiles,
			SegmentIndex:            finalSegment,
			PercentOfTrip:           100,
			Reason:                  domain.RefuelFinal,
		})
		return points, nil
	}

	if len(route.Legs) > 0 {
		points = append(points, legBasedStops(route, safeRange, totalMiles)...)
	} else {
		// No per-leg data: space stops uniformly at safe-range multiples.
		for d := safeRange; d < totalMiles; d += safeRange {
			points = append(points, domain.RefuelPoint{
				CumulativeDistanceMiles: d,
				SegmentIndex:            domain.SegmentUnknown,
				PercentOfTrip:           d / totalMiles * 100,
				Reason:                  domain.RefuelRangeLimit,
			})
		}
	}

	points = append(points, domain.RefuelPoint{
		CumulativeDistanceMiles: totalMiles,
		SegmentIndex:            finalSegment,
		PercentOfTrip:           100,
		Reason:                  domain.RefuelFinal,
	})

	return points, nil
}

// legBasedStops walks the route legs in order, accumulating distance and
// emitting a stop each time the distance since the last refuel reaches the
// safe range. When the stretch past the last leg-based stop still exceeds
// the safe range, additional stops are synthesized at safe-range multiples
// and mapped back to the leg whose cumulative distance first covers them.
func legBasedStops(route domain.RouteInfo, safeRange, totalMiles float64) []domain.RefuelPoint {
	var stops []domain.RefuelPoint

	cumulative := 0.0
	lastRefuel := 0.0

	for i, leg := range route.Legs {
		cumulative += leg.DistanceMiles()

		// A stop exactly at the safe-range boundary belongs to this leg.
		if cumulative-lastRefuel >= safeRange {
			stops = append(stops, domain.RefuelPoint{
				CumulativeDistanceMiles: cumulative,
				SegmentIndex:            i,
				PercentOfTrip:           cumulative / totalMiles * 100,
				Reason:                  domain.RefuelRangeLimit,
			})
			lastRefuel = cumulative
		}
	}

	if totalMiles-lastRefuel > safeRange {
		current := lastRefuel
		for totalMiles-current > safeRange {
			current += safeRange

			segment := 0
			accumulated := 0.0
			for i, leg := range route.Legs {
				accumulated += leg.DistanceMiles()
				if accumulated >= current {
					segment = i
					break
				}
			}

			stops = append(stops, domain.RefuelPoint{
				CumulativeDistanceMiles: current,
				SegmentIndex:            segment,
				PercentOfTrip:           current / totalMiles * 100,
				Reason:                  domain.RefuelRangeLimit,
			})
		}
	}

	return stops
}

// RefuelStopsOnly returns the actionable "go refuel here" subset of a plan,
// excluding the initial and final bracketing points.
func RefuelStopsOnly(points []domain.RefuelPoint) []domain.RefuelPoint {
	stops := make([]domain.RefuelPoint, 0, len(points))
	for _, p := range points {
		if p.Reason == domain.RefuelRangeLimit {
			stops = append(stops, p)
		}
	}
	return stops
}

// FuelPerSegment returns the estimated fuel consumed between consecutive
// plan points, in the vehicle's fuel unit.
func FuelPerSegment(points []domain.RefuelPoint, vehicle domain.VehicleInfo) ([]float64, error) {
	if vehicle.FuelEfficiency <= 0 {
		return nil, fmt.Errorf(
			"fuel per segment: fuel efficiency %v must be positive: %w",
			vehicle.FuelEfficiency, ErrInvalidInput,
		)
	}

	fuelPerMile := 1 / vehicle.FuelEfficiency

	segments := make([]float64, 0, len(points))
	for i := 1; i < len(points); i++ {
		distance := points[i].CumulativeDistanceMiles - points[i-1].CumulativeDistanceMiles
		segments = append(segments, distance*fuelPerMile)
	}

	return segments, nil
}
