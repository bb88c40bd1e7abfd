package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"fuel-route-service/internal/ports"
)

func newTestRedisCache(t *testing.T) (*RedisPriceCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisPriceCache(client, 15*time.Minute), srv
}

func TestRedisPriceCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestRedisCache(t)

	records := []ports.FeedStationRecord{
		{
			ID:   "gb-1",
			Name: "Wawa",
			Lat:  39.95,
			Lng:  -75.16,
			Prices: []ports.FeedGradePrice{
				{
					FuelProduct: "regular_gas",
					LongName:    "Regular",
					Credit:      &ports.FeedPrice{Price: 3.39, PostedTime: "2026-03-01T12:00:00Z"},
				},
			},
		},
	}

	if err := c.Put(ctx, "39.950,-75.160", records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "39.950,-75.160")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != 1 || got[0].Name != "Wawa" {
		t.Fatalf("unexpected records: %+v", got)
	}
	if got[0].Prices[0].Credit == nil || got[0].Prices[0].Credit.Price != 3.39 {
		t.Fatalf("price did not survive round trip: %+v", got[0].Prices)
	}
}

func TestRedisPriceCacheMissAndExpiry(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestRedisCache(t)

	if _, ok, err := c.Get(ctx, "nowhere"); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	if err := c.Put(ctx, "k", []ports.FeedStationRecord{{ID: "1"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	srv.FastForward(16 * time.Minute)

	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatal("entry survived past TTL")
	}
}
