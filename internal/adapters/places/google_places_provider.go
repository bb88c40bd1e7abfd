package places

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
)

const placesFieldMask = "places.displayName,places.formattedAddress,places.location,places.priceLevel"

// DefaultSearchRadiusMeters bounds the nearby-station search when the
// caller does not specify a radius.
const DefaultSearchRadiusMeters = 5000.0

// GooglePlacesProvider implements PlacesProvider using the Places API (New)
// searchNearby endpoint, restricted to gas stations.
type GooglePlacesProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewGooglePlacesProvider(apiKey string) (*GooglePlacesProvider, error) {
	if apiKey == "" {
		return nil, errors.New("Google Maps api key is empty")
	}

	return &GooglePlacesProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://places.googleapis.com",
	}, nil
}

type searchNearbyRequest struct {
	IncludedTypes       []string `json:"includedTypes"`
	MaxResultCount      int      `json:"maxResultCount"`
	LocationRestriction struct {
		Circle struct {
			Center struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"center"`
			Radius float64 `json:"radius"`
		} `json:"circle"`
	} `json:"locationRestriction"`
}

type searchNearbyResponse struct {
	Places []struct {
		DisplayName struct {
			Text string `json:"text"`
		} `json:"displayName"`
		FormattedAddress string `json:"formattedAddress"`
		Location         struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"location"`
		PriceLevel string `json:"priceLevel"`
	} `json:"places"`
}

// FindNearbyFuelStations returns up to 5 gas stations within radiusMeters
// of location.
func (g *GooglePlacesProvider) FindNearbyFuelStations(
	ctx context.Context,
	location domain.Coordinates,
	radiusMeters float64,
) (_ []domain.GasStationCandidate, err error) {
	defer obs.Time(ctx, "places.FindNearbyFuelStations")(&err)

	if radiusMeters <= 0 {
		radiusMeters = DefaultSearchRadiusMeters
	}

	var body searchNearbyRequest
	body.IncludedTypes = []string{"gas_station"}
	body.MaxResultCount = 5
	body.LocationRestriction.Circle.Center.Latitude = location.Lat
	body.LocationRestriction.Circle.Center.Longitude = location.Lng
	body.LocationRestriction.Circle.Radius = radiusMeters

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal places request: %w", err)
	}

	endpoint := g.baseURL + "/v1/places:searchNearby"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create places request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", g.apiKey)
	req.Header.Set("X-Goog-FieldMask", placesFieldMask)

	resp, err := g.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf(
			"places request returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)),
		)
	}

	var decoded searchNearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode places response: %w", err)
	}

	stations := make([]domain.GasStationCandidate, 0, len(decoded.Places))
	for _, place := range decoded.Places {
		name := place.DisplayName.Text
		if name == "" {
			name = "Unknown Station"
		}

		stations = append(stations, domain.GasStationCandidate{
			Name:    name,
			Address: place.FormattedAddress,
			Location: domain.Coordinates{
				Lat: place.Location.Latitude,
				Lng: place.Location.Longitude,
			},
			PriceLevel: priceLevelOrdinal(place.PriceLevel),
		})
	}

	return stations, nil
}

// priceLevelOrdinal maps the API's price-level enum to the 1-4 ordinal.
// Absent or unrecognized levels map to 0.
func priceLevelOrdinal(level string) int {
	switch level {
	case "PRICE_LEVEL_INEXPENSIVE":
		return 1
	case "PRICE_LEVEL_MODERATE":
		return 2
	case "PRICE_LEVEL_EXPENSIVE":
		return 3
	case "PRICE_LEVEL_VERY_EXPENSIVE":
		return 4
	default:
		return 0
	}
}
