package domain

// RouteLeg is a single waypoint-to-waypoint segment of a computed route.
type RouteLeg struct {
	StartAddress    string
	EndAddress      string
	DistanceMeters  int
	DurationSeconds int
	Polyline        string
}

// DistanceMiles returns the leg distance converted to miles.
func (l RouteLeg) DistanceMiles() float64 {
	return MetersToMiles(float64(l.DistanceMeters))
}

// RouteInfo is the result of a single route computation.
// The total distance is the source of truth; legs provide per-segment
// granularity when the routing provider returns them. Immutable once built.
type RouteInfo struct {
	DistanceMeters  int
	DurationSeconds int
	Legs            []RouteLeg
	Polyline        string
}

// DistanceMiles returns the total route distance in miles.
func (r RouteInfo) DistanceMiles() float64 {
	return MetersToMiles(float64(r.DistanceMeters))
}

// DistanceKm returns the total route distance in kilometers.
func (r RouteInfo) DistanceKm() float64 {
	return MetersToKilometers(float64(r.DistanceMeters))
}

// DurationFormatted returns the route duration as a human-readable string,
// e.g. "1 hour 1 minute" or "45 minutes".
func (r RouteInfo) DurationFormatted() string {
	return FormatDuration(r.DurationSeconds)
}
