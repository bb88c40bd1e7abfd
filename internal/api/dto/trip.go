package dto

type TripVehicleRequest struct {
	Year            int     `json:"year"`
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	FuelType        string  `json:"fuel_type"`
	FuelEfficiency  float64 `json:"fuel_efficiency"`
	EfficiencyUnit  string  `json:"efficiency_unit"`
	TankSizeGallons float64 `json:"tank_size_gallons"`
	CombinedMpg     float64 `json:"combined_mpg"`
}

type TripEstimateRequest struct {
	Origin           string             `json:"origin"`
	Destination      string             `json:"destination"`
	Waypoints        []string           `json:"waypoints"`
	Vehicle          TripVehicleRequest `json:"vehicle"`
	FuelPricePerUnit *float64           `json:"fuel_price_per_unit"`
	SafetyBuffer     float64            `json:"safety_buffer"`
}

type RefuelPointResponse struct {
	CumulativeDistanceMiles float64 `json:"cumulative_distance_miles"`
	SegmentIndex            int     `json:"segment_index"`
	PercentOfTrip           float64 `json:"percent_of_trip"`
	Reason                  string  `json:"reason"`
}

type TripEstimateResponse struct {
	Route           RouteResponse         `json:"route"`
	FuelNeeded      float64               `json:"fuel_needed"`
	TotalCost       float64               `json:"total_cost"`
	CostPerMile     *float64              `json:"cost_per_mile,omitempty"`
	PricePerUnit    float64               `json:"price_per_unit"`
	PriceSource     string                `json:"price_source"`
	PriceCities     []string              `json:"price_cities,omitempty"`
	TankSizeGallons float64               `json:"tank_size_gallons"`
	TankSizeSource  string                `json:"tank_size_source"`
	RefuelPlan      []RefuelPointResponse `json:"refuel_plan"`
	FuelPerSegment  []float64             `json:"fuel_per_segment"`
}
