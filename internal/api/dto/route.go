package dto

type RouteRequest struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Waypoints   []string `json:"waypoints"`
}

type RouteLegResponse struct {
	StartAddress    string  `json:"start_address"`
	EndAddress      string  `json:"end_address"`
	DistanceMeters  int     `json:"distance_meters"`
	DistanceMiles   float64 `json:"distance_miles"`
	DurationSeconds int     `json:"duration_seconds"`
	Polyline        string  `json:"polyline,omitempty"`
}

type RouteResponse struct {
	DistanceMeters  int                `json:"distance_meters"`
	DistanceMiles   float64            `json:"distance_miles"`
	DurationSeconds int                `json:"duration_seconds"`
	DurationText    string             `json:"duration_text"`
	Polyline        string             `json:"polyline,omitempty"`
	Legs            []RouteLegResponse `json:"legs"`
}
