package services

import (
	"context"
	"testing"
	"time"

	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/adapters/pricingfeed"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

func feedRecord(name, address string, lat, lng, cash, credit float64) ports.FeedStationRecord {
	rec := ports.FeedStationRecord{
		ID:      name,
		Name:    name,
		Address: address,
		Lat:     lat,
		Lng:     lng,
	}

	grade := ports.FeedGradePrice{FuelProduct: "regular_gas", LongName: "Regular"}
	if cash > 0 {
		grade.Cash = &ports.FeedPrice{Price: cash, PostedTime: "2026-03-01T08:00:00Z"}
	}
	if credit > 0 {
		grade.Credit = &ports.FeedPrice{Price: credit, PostedTime: "2026-03-01T09:00:00Z"}
	}
	rec.Prices = []ports.FeedGradePrice{grade}

	return rec
}

func TestReconcileMatchesFeedStation(t *testing.T) {
	feed := pricingfeed.NewMockFeedProvider(map[string][]ports.FeedStationRecord{
		"40.000,-75.000": {
			feedRecord("Wawa 100", "123 Main St", 40.0, -75.0, 3.19, 3.39),
		},
	})
	rc := NewReconciler(feed, nil)

	candidates := []domain.GasStationCandidate{
		{Name: "Wawa 100", Address: "123 Main St, Philadelphia", Location: domain.Coordinates{Lat: 40.0, Lng: -75.0}},
	}

	priced, err := rc.Reconcile(context.Background(), candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(priced) != 1 {
		t.Fatalf("expected 1 priced station, got %d", len(priced))
	}

	got := priced[0]
	if got.StationName != "Wawa 100" || got.Source != domain.PriceSourceFeed {
		t.Fatalf("unexpected station: %+v", got)
	}
	// Credit price wins when both postings exist.
	if got.RegularPrice == nil || *got.RegularPrice != 3.39 {
		t.Fatalf("expected credit price 3.39, got %v", got.RegularPrice)
	}
	if got.LastUpdated != "2026-03-01T09:00:00Z" {
		t.Fatalf("expected credit posting time, got %q", got.LastUpdated)
	}
}

func TestReconcileGroupSharesOneFeedCall(t *testing.T) {
	records := []ports.FeedStationRecord{
		feedRecord("Sunrise Fuel Depot", "1 First St", 40.0, -75.0, 0, 3.00),
		feedRecord("Maple Street Gas", "2 Second St", 40.0, -75.0, 0, 3.50),
		feedRecord("Harbor Quick Stop", "3 Third St", 40.0, -75.0, 0, 4.00),
	}
	feed := pricingfeed.NewMockFeedProvider(map[string][]ports.FeedStationRecord{
		"40.000,-75.000": records,
	})
	rc := NewReconciler(feed, nil)

	candidates := []domain.GasStationCandidate{
		{Name: "Sunrise Fuel Depot", Address: "1 First St", Location: domain.Coordinates{Lat: 40.0, Lng: -75.0}},
		{Name: "Maple Street Gas", Address: "2 Second St", Location: domain.Coordinates{Lat: 40.0, Lng: -75.0}},
		{Name: "Harbor Quick Stop", Address: "3 Third St", Location: domain.Coordinates{Lat: 40.0, Lng: -75.0}},
	}

	priced, err := rc.Reconcile(context.Background(), candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if feed.Calls != 1 {
		t.Fatalf("expected a single feed call for one proximity group, got %d", feed.Calls)
	}
	if len(priced) != 3 {
		t.Fatalf("expected all 3 candidates priced, got %d", len(priced))
	}
	for _, p := range priced {
		if p.Source != domain.PriceSourceFeed {
			t.Fatalf("expected feed source for %q, got %q", p.StationName, p.Source)
		}
	}
}

func TestReconcileFeedFailureFallsBackToRegionalAverage(t *testing.T) {
	// Feed data exists only for the first area; the second group degrades.
	feed := pricingfeed.NewMockFeedProvider(map[string][]ports.FeedStationRecord{
		"40.000,-75.000": {
			feedRecord("Sunrise Fuel Depot", "1 First St", 40.0, -75.0, 0, 3.00),
			feedRecord("Maple Street Gas", "2 Second St", 40.0, -75.0, 0, 3.50),
			feedRecord("Harbor Quick Stop", "3 Third St", 40.0, -75.0, 0, 4.00),
		},
	})
	rc := NewReconciler(feed, nil)

	candidates := []domain.GasStationCandidate{
		{Name: "Sunrise Fuel Depot", Address: "1 First St", Location: domain.Coordinates{Lat: 40.0, Lng: -75.0}},
		{Name: "Maple Street Gas", Address: "2 Second St", Location: domain.Coordinates{Lat: 40.0, Lng: -75.0}},
		{Name: "Harbor Quick Stop", Address: "3 Third St", Location: domain.Coordinates{Lat: 40.0, Lng: -75.0}},
		{Name: "Far Away Fuel", Address: "9 Distant Rd", Location: domain.Coordinates{Lat: 41.0, Lng: -75.0}},
	}

	priced, err := rc.Reconcile(context.Background(), candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(priced) != 4 {
		t.Fatalf("expected 3 matched + 1 regional average, got %d", len(priced))
	}

	last := priced[3]
	if last.StationName != "Far Away Fuel" || last.Source != domain.PriceSourceRegionalAverage {
		t.Fatalf("unexpected fallback entry: %+v", last)
	}
	if last.RegularPrice == nil || *last.RegularPrice != 3.50 {
		t.Fatalf("expected regional average 3.50, got %v", last.RegularPrice)
	}
}

func TestReconcileOmitsUnmatchedWithoutEnoughSamples(t *testing.T) {
	// One match is below the 3-sample minimum, so the unmatched candidate
	// is dropped instead of receiving a made-up average.
	feed := pricingfeed.NewMockFeedProvider(map[string][]ports.FeedStationRecord{
		"40.000,-75.000": {
			feedRecord("Sunrise Fuel Depot", "1 First St", 40.0, -75.0, 0, 3.00),
		},
	})
	rc := NewReconciler(feed, nil)

	candidates := []domain.GasStationCandidate{
		{Name: "Sunrise Fuel Depot", Address: "1 First St", Location: domain.Coordinates{Lat: 40.0, Lng: -75.0}},
		{Name: "Far Away Fuel", Address: "9 Distant Rd", Location: domain.Coordinates{Lat: 41.0, Lng: -75.0}},
	}

	priced, err := rc.Reconcile(context.Background(), candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(priced) != 1 || priced[0].StationName != "Sunrise Fuel Depot" {
		t.Fatalf("expected only the matched station, got %+v", priced)
	}
}

func TestReconcileUsesCacheOnRepeatLookups(t *testing.T) {
	feed := pricingfeed.NewMockFeedProvider(map[string][]ports.FeedStationRecord{
		"40.000,-75.000": {
			feedRecord("Wawa 100", "123 Main St", 40.0, -75.0, 0, 3.39),
		},
	})
	rc := NewReconciler(feed, cache.NewMemoryPriceCache(15*time.Minute))

	candidates := []domain.GasStationCandidate{
		{Name: "Wawa 100", Address: "123 Main St", Location: domain.Coordinates{Lat: 40.0, Lng: -75.0}},
	}

	for i := 0; i < 2; i++ {
		if _, err := rc.Reconcile(context.Background(), candidates); err != nil {
			t.Fatalf("unexpected error on pass %d: %v", i+1, err)
		}
	}

	if feed.Calls != 1 {
		t.Fatalf("expected second pass to hit the cache, got %d feed calls", feed.Calls)
	}
}

func TestReconcileEmptyCandidates(t *testing.T) {
	rc := NewReconciler(pricingfeed.NewMockFeedProvider(nil), nil)

	priced, err := rc.Reconcile(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if priced == nil || len(priced) != 0 {
		t.Fatalf("expected empty non-nil result, got %+v", priced)
	}
}

func TestGroupByProximityIsSeedAnchored(t *testing.T) {
	// 40.04 is within 0.05 degrees of the 40.00 seed, but 40.08 is not,
	// even though it neighbors 40.04. Grouping compares against the seed
	// only, so the chain does not merge.
	candidates := []domain.GasStationCandidate{
		{Name: "A", Location: domain.Coordinates{Lat: 40.00, Lng: -75.0}},
		{Name: "B", Location: domain.Coordinates{Lat: 40.04, Lng: -75.0}},
		{Name: "C", Location: domain.Coordinates{Lat: 40.08, Lng: -75.0}},
	}

	groups := groupByProximity(candidates)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d: %+v", len(groups), groups)
	}
	if len(groups[0]) != 2 || groups[0][1].Name != "B" {
		t.Fatalf("expected A and B grouped, got %+v", groups[0])
	}
	if len(groups[1]) != 1 || groups[1][0].Name != "C" {
		t.Fatalf("expected C alone, got %+v", groups[1])
	}
}
