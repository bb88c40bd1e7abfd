package domain

// RefuelReason tags why a refuel point exists in a plan.
type RefuelReason string

const (
	RefuelInitial    RefuelReason = "initial"
	RefuelRangeLimit RefuelReason = "range_limit"
	RefuelFinal      RefuelReason = "final"
)

// SegmentUnknown marks a refuel point that cannot be mapped to a route leg
// because the route carried no per-leg data.
const SegmentUnknown = -1

// RefuelPoint is one entry in a refuel plan, positioned by cumulative
// distance from the route origin. Plans always start with an initial point
// at zero and end with a final point at the route's total distance, with
// non-decreasing distances in between.
type RefuelPoint struct {
	CumulativeDistanceMiles float64
	SegmentIndex            int
	PercentOfTrip           float64
	Reason                  RefuelReason
}

// TripCost is the derived cost estimate for a route/vehicle/price triple.
// It is recomputed from scratch whenever an input changes.
type TripCost struct {
	Route      RouteInfo
	Vehicle    VehicleInfo
	FuelNeeded float64
	TotalCost  float64
	// CostPerMile is nil when the route distance is zero.
	CostPerMile *float64
	RefuelPlan  []RefuelPoint
}
