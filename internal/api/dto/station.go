package dto

type StationCandidateRequest struct {
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	PriceLevel int     `json:"price_level"`
}

type StationPricesRequest struct {
	Stations []StationCandidateRequest `json:"stations"`

	// Alternative to an explicit station list: search near a coordinate.
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
	RadiusMeters float64  `json:"radius_meters"`
}

type PricedStationResponse struct {
	StationName  string   `json:"station_name"`
	Address      string   `json:"address"`
	RegularPrice *float64 `json:"regular_price,omitempty"`
	LastUpdated  string   `json:"last_updated,omitempty"`
	Source       string   `json:"source"`
}

type StationPricesResponse struct {
	Prices []PricedStationResponse `json:"prices"`
}
