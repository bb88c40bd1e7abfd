package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fuel-route-service/internal/ports"
)

// RedisPriceCache is a Redis-backed PriceCache for deployments running
// multiple replicas, where a shared cache avoids duplicate feed calls.
// Values are JSON-encoded feed records; Redis handles expiry via SET TTL.
type RedisPriceCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisPriceCache(client *redis.Client, ttl time.Duration) *RedisPriceCache {
	if ttl <= 0 {
		ttl = DefaultPriceTTL
	}
	return &RedisPriceCache{
		client: client,
		ttl:    ttl,
		prefix: "feedprices:",
	}
}

func (c *RedisPriceCache) Get(ctx context.Context, key string) ([]ports.FeedStationRecord, bool, error) {
	payload, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis price cache: get %q: %w", key, err)
	}

	var records []ports.FeedStationRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, false, fmt.Errorf("redis price cache: decode %q: %w", key, err)
	}

	return records, true, nil
}

func (c *RedisPriceCache) Put(ctx context.Context, key string, records []ports.FeedStationRecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("redis price cache: encode %q: %w", key, err)
	}

	if err := c.client.Set(ctx, c.prefix+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis price cache: set %q: %w", key, err)
	}

	return nil
}
