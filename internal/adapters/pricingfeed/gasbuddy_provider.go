package pricingfeed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
)

// GraphQL query for stations with current prices around a coordinate.
const locationPricesQuery = `query LocationBySearchTerm($brandId: Int, $cursor: String, $fuel: Int, $lat: Float, $lng: Float, $maxAge: Int, $search: String) {
  locationBySearchTerm(lat: $lat, lng: $lng, search: $search) {
    stations(brandId: $brandId cursor: $cursor fuel: $fuel lat: $lat lng: $lng maxAge: $maxAge) {
      results {
        address { line1 }
        prices {
          cash { nickname postedTime price }
          credit { nickname postedTime price }
          fuelProduct
          longName
        }
        priceUnit
        currency
        id
        latitude
        longitude
        name
      }
    }
  }
}`

// GasBuddyProvider implements PricingFeedProvider against the GasBuddy
// GraphQL endpoint. The feed is unofficial; it expects browser-like
// headers and is treated as best-effort by callers.
type GasBuddyProvider struct {
	session *http.Client
	baseURL string
}

func NewGasBuddyProvider() *GasBuddyProvider {
	return &GasBuddyProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://www.gasbuddy.com",
	}
}

type graphqlRequest struct {
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
	Query         string         `json:"query"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type locationPricesResponse struct {
	Data struct {
		LocationBySearchTerm struct {
			Stations struct {
				Results []feedStationResult `json:"results"`
			} `json:"stations"`
		} `json:"locationBySearchTerm"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

type feedStationResult struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address struct {
		Line1 string `json:"line1"`
	} `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Currency  string  `json:"currency"`
	Prices    []struct {
		FuelProduct string          `json:"fuelProduct"`
		LongName    string          `json:"longName"`
		Cash        *feedPriceEntry `json:"cash"`
		Credit      *feedPriceEntry `json:"credit"`
	} `json:"prices"`
}

type feedPriceEntry struct {
	Price      float64 `json:"price"`
	PostedTime string  `json:"postedTime"`
}

// LookupStationPrices fetches the stations the feed knows around the
// given coordinate. All failure modes wrap ErrFeedUnavailable so callers
// can degrade uniformly.
func (g *GasBuddyProvider) LookupStationPrices(
	ctx context.Context,
	lat, lng float64,
) (_ []ports.FeedStationRecord, err error) {
	defer obs.Time(ctx, "pricingfeed.LookupStationPrices")(&err)

	body := graphqlRequest{
		OperationName: "LocationBySearchTerm",
		Variables: map[string]any{
			"maxAge": 0,
			"lat":    lat,
			"lng":    lng,
		},
		Query: locationPricesQuery,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal feed request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, g.baseURL+"/graphql", bytes.NewReader(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("create feed request: %w", err)
	}
	setFeedHeaders(req)

	resp, err := g.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w (%w)", err, ports.ErrFeedUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"feed returned status %d: %w", resp.StatusCode, ports.ErrFeedUnavailable,
		)
	}

	var decoded locationPricesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode feed response: %w (%w)", err, ports.ErrFeedUnavailable)
	}

	if len(decoded.Errors) > 0 {
		return nil, fmt.Errorf(
			"feed graphql error: %s: %w", decoded.Errors[0].Message, ports.ErrFeedUnavailable,
		)
	}

	results := decoded.Data.LocationBySearchTerm.Stations.Results
	records := make([]ports.FeedStationRecord, 0, len(results))
	for _, r := range results {
		record := ports.FeedStationRecord{
			ID:       r.ID,
			Name:     r.Name,
			Address:  r.Address.Line1,
			Lat:      r.Latitude,
			Lng:      r.Longitude,
			Currency: r.Currency,
		}

		for _, p := range r.Prices {
			grade := ports.FeedGradePrice{
				FuelProduct: p.FuelProduct,
				LongName:    p.LongName,
			}
			if p.Cash != nil {
				grade.Cash = &ports.FeedPrice{Price: p.Cash.Price, PostedTime: p.Cash.PostedTime}
			}
			if p.Credit != nil {
				grade.Credit = &ports.FeedPrice{Price: p.Credit.Price, PostedTime: p.Credit.PostedTime}
			}
			record.Prices = append(record.Prices, grade)
		}

		records = append(records, record)
	}

	return records, nil
}

// The feed rejects requests without these browser-shaped headers.
func setFeedHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Sec-Fetch-Dest", "")
	req.Header.Set("Sec-Fetch-Mode", "cors")
	req.Header.Set("Sec-Fetch-Site", "same-origin")
	req.Header.Set("Priority", "u=0")
	req.Header.Set("apollo-require-preflight", "true")
	req.Header.Set("Origin", "https://www.gasbuddy.com")
	req.Header.Set("Referer", "https://www.gasbuddy.com/home")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/137.0.0.0 Safari/537.36")
}
