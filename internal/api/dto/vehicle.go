package dto

type VehicleYearsResponse struct {
	Years []int `json:"years"`
}

type VehicleMakesResponse struct {
	Makes []string `json:"makes"`
}

type VehicleModelsResponse struct {
	Models []string `json:"models"`
}

type VehicleSpecResponse struct {
	Year            int     `json:"year"`
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	Trim            string  `json:"trim,omitempty"`
	FuelType        string  `json:"fuel_type"`
	CityMpg         float64 `json:"city_mpg"`
	HighwayMpg      float64 `json:"highway_mpg"`
	CombinedMpg     float64 `json:"combined_mpg"`
	TankSizeGallons float64 `json:"tank_size_gallons"`
	TankSizeSource  string  `json:"tank_size_source"`
}

type VehicleSpecsResponse struct {
	Vehicles []VehicleSpecResponse `json:"vehicles"`
}
