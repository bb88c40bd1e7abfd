package ports

import "context"

// Port: a short-lived cache of raw pricing feed results keyed by rounded
// group centroid. Implementations must tolerate concurrent read/insert;
// last-writer-wins is acceptable. Entries older than the cache's TTL are
// treated as absent (lazy expiry).
type PriceCache interface {
	// Get returns the cached records for key, with ok=false on miss or
	// expiry.
	Get(ctx context.Context, key string) (records []FeedStationRecord, ok bool, err error)
	// Put stores records under key, resetting its TTL.
	Put(ctx context.Context, key string, records []FeedStationRecord) error
}
