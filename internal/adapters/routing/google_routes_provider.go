package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
)

const routesFieldMask = "routes.duration,routes.distanceMeters,routes.polyline.encodedPolyline," +
	"routes.legs.distanceMeters,routes.legs.duration,routes.legs.polyline.encodedPolyline"

// GoogleRoutesProvider implements RouteProvider using the Google Routes API
// (directions/v2:computeRoutes). External API calls go through retry/backoff;
// the provider is safe for concurrent use.
type GoogleRoutesProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewGoogleRoutesProvider(apiKey string) (*GoogleRoutesProvider, error) {
	if apiKey == "" {
		return nil, errors.New("Google Maps api key is empty")
	}

	return &GoogleRoutesProvider{
		session: &http.Client{Timeout: 15 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://routes.googleapis.com",
	}, nil
}

type routesWaypoint struct {
	Address string `json:"address"`
}

type computeRoutesRequest struct {
	Origin                   routesWaypoint   `json:"origin"`
	Destination              routesWaypoint   `json:"destination"`
	Intermediates            []routesWaypoint `json:"intermediates,omitempty"`
	TravelMode               string           `json:"travelMode"`
	RoutingPreference        string           `json:"routingPreference"`
	ComputeAlternativeRoutes bool             `json:"computeAlternativeRoutes"`
	LanguageCode             string           `json:"languageCode"`
	Units                    string           `json:"units"`
}

type computeRoutesResponse struct {
	Routes []struct {
		DistanceMeters int    `json:"distanceMeters"`
		Duration       string `json:"duration"`
		Polyline       struct {
			EncodedPolyline string `json:"encodedPolyline"`
		} `json:"polyline"`
		Legs []struct {
			DistanceMeters int    `json:"distanceMeters"`
			Duration       string `json:"duration"`
			Polyline       struct {
				EncodedPolyline string `json:"encodedPolyline"`
			} `json:"polyline"`
		} `json:"legs"`
	} `json:"routes"`
}

// ComputeRoute computes the best driving route through the waypoints in
// order. Leg addresses are filled from the request sequence since the API
// does not echo them back.
func (g *GoogleRoutesProvider) ComputeRoute(
	ctx context.Context,
	origin, destination string,
	waypoints []string,
) (_ domain.RouteInfo, err error) {
	defer obs.Time(ctx, "routes.ComputeRoute")(&err)

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return domain.RouteInfo{}, errors.New("compute route: origin and destination must be non-empty")
	}

	body := computeRoutesRequest{
		Origin:                   routesWaypoint{Address: origin},
		Destination:              routesWaypoint{Address: destination},
		TravelMode:               "DRIVE",
		RoutingPreference:        "TRAFFIC_AWARE",
		ComputeAlternativeRoutes: false,
		LanguageCode:             "en-US",
		Units:                    "IMPERIAL",
	}
	for _, w := range waypoints {
		if strings.TrimSpace(w) == "" {
			continue
		}
		body.Intermediates = append(body.Intermediates, routesWaypoint{Address: w})
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return domain.RouteInfo{}, fmt.Errorf("marshal routes request: %w", err)
	}

	endpoint := g.baseURL + "/directions/v2:computeRoutes"
	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		return g.newRequest(ctx, http.MethodPost, endpoint, routesFieldMask, bytes.NewReader(payload))
	})
	if err != nil {
		return domain.RouteInfo{}, fmt.Errorf("routes request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded computeRoutesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.RouteInfo{}, fmt.Errorf("decode routes response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		return domain.RouteInfo{}, fmt.Errorf(
			"compute route %q -> %q: %w", origin, destination, ports.ErrRouteNotFound,
		)
	}

	route := decoded.Routes[0]

	duration, err := parseDurationSeconds(route.Duration)
	if err != nil {
		return domain.RouteInfo{}, fmt.Errorf("parse route duration: %w", err)
	}

	// Stop sequence for leg address annotation: origin, waypoints, destination.
	stops := make([]string, 0, 2+len(body.Intermediates))
	stops = append(stops, origin)
	for _, w := range body.Intermediates {
		stops = append(stops, w.Address)
	}
	stops = append(stops, destination)

	legs := make([]domain.RouteLeg, 0, len(route.Legs))
	for i, leg := range route.Legs {
		legDuration, err := parseDurationSeconds(leg.Duration)
		if err != nil {
			return domain.RouteInfo{}, fmt.Errorf("parse leg %d duration: %w", i, err)
		}

		start, end := "", ""
		if i+1 < len(stops) {
			start, end = stops[i], stops[i+1]
		}

		legs = append(legs, domain.RouteLeg{
			StartAddress:    start,
			EndAddress:      end,
			DistanceMeters:  leg.DistanceMeters,
			DurationSeconds: legDuration,
			Polyline:        leg.Polyline.EncodedPolyline,
		})
	}

	return domain.RouteInfo{
		DistanceMeters:  route.DistanceMeters,
		DurationSeconds: duration,
		Legs:            legs,
		Polyline:        route.Polyline.EncodedPolyline,
	}, nil
}

// parseDurationSeconds parses the API's "123s" duration encoding.
func parseDurationSeconds(raw string) (int, error) {
	trimmed := strings.TrimSuffix(raw, "s")
	if trimmed == "" {
		return 0, nil
	}

	seconds, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", raw, err)
	}

	return int(seconds), nil
}
