package pricingfeed

import (
	"context"
	"fmt"

	"fuel-route-service/internal/ports"
)

// MockFeedProvider serves canned feed records keyed by the "%.3f,%.3f"
// coordinate key. Lookups for unknown coordinates fail, matching a feed
// outage for that area.
type MockFeedProvider struct {
	m     map[string][]ports.FeedStationRecord
	Calls int
}

func NewMockFeedProvider(byArea map[string][]ports.FeedStationRecord) *MockFeedProvider {
	if byArea == nil {
		byArea = make(map[string][]ports.FeedStationRecord)
	}
	return &MockFeedProvider{m: byArea}
}

func (p *MockFeedProvider) LookupStationPrices(
	ctx context.Context,
	lat, lng float64,
) ([]ports.FeedStationRecord, error) {
	p.Calls++

	key := fmt.Sprintf("%.3f,%.3f", lat, lng)
	records, ok := p.m[key]
	if !ok {
		return nil, fmt.Errorf("no feed data for %s: %w", key, ports.ErrFeedUnavailable)
	}

	return records, nil
}
