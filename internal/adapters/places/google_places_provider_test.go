package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fuel-route-service/internal/domain"
)

func TestFindNearbyFuelStationsMapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/places:searchNearby" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("X-Goog-Api-Key") != "test-key" {
			t.Errorf("missing api key header")
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"places":[
			{"displayName":{"text":"Shell"},"formattedAddress":"1 Main St","location":{"latitude":40.0,"longitude":-75.0},"priceLevel":"PRICE_LEVEL_EXPENSIVE"},
			{"displayName":{"text":""},"formattedAddress":"2 Main St","location":{"latitude":40.01,"longitude":-75.0}}
		]}`))
	}))
	defer srv.Close()

	provider, err := NewGooglePlacesProvider("test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	provider.baseURL = srv.URL

	stations, err := provider.FindNearbyFuelStations(
		context.Background(), domain.Coordinates{Lat: 40.0, Lng: -75.0}, 0,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stations) != 2 {
		t.Fatalf("expected 2 stations, got %d", len(stations))
	}

	if stations[0].Name != "Shell" || stations[0].PriceLevel != 3 {
		t.Fatalf("unexpected first station: %+v", stations[0])
	}
	if stations[1].Name != "Unknown Station" {
		t.Fatalf("expected name fallback, got %q", stations[1].Name)
	}
	if stations[1].PriceLevel != 0 {
		t.Fatalf("expected price level 0 for absent level, got %d", stations[1].PriceLevel)
	}
}

func TestPriceLevelOrdinal(t *testing.T) {
	cases := []struct {
		level string
		want  int
	}{
		{"PRICE_LEVEL_INEXPENSIVE", 1},
		{"PRICE_LEVEL_MODERATE", 2},
		{"PRICE_LEVEL_EXPENSIVE", 3},
		{"PRICE_LEVEL_VERY_EXPENSIVE", 4},
		{"PRICE_LEVEL_UNSPECIFIED", 0},
		{"", 0},
	}

	for _, c := range cases {
		if got := priceLevelOrdinal(c.level); got != c.want {
			t.Errorf("priceLevelOrdinal(%q) = %d, want %d", c.level, got, c.want)
		}
	}
}
