package cache

import (
	"context"
	"sync"
	"time"

	"fuel-route-service/internal/ports"
)

// DefaultPriceTTL bounds how stale a cached feed result may be.
const DefaultPriceTTL = 15 * time.Minute

type memoryEntry struct {
	records  []ports.FeedStationRecord
	storedAt time.Time
}

// MemoryPriceCache is an in-process PriceCache with lazy TTL expiry.
// Entries live for the configured TTL and are dropped on the read that
// finds them stale; there is no background sweeping. Construct once per
// process and inject wherever needed. Safe for concurrent use;
// last-writer-wins on concurrent Put.
type MemoryPriceCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryPriceCache(ttl time.Duration) *MemoryPriceCache {
	if ttl <= 0 {
		ttl = DefaultPriceTTL
	}
	return &MemoryPriceCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock replaces the cache's time source. Test hook.
func (c *MemoryPriceCache) WithClock(now func() time.Time) *MemoryPriceCache {
	c.now = now
	return c
}

func (c *MemoryPriceCache) Get(_ context.Context, key string) ([]ports.FeedStationRecord, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}

	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false, nil
	}

	return entry.records, true, nil
}

func (c *MemoryPriceCache) Put(_ context.Context, key string, records []ports.FeedStationRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{records: records, storedAt: c.now()}
	return nil
}
