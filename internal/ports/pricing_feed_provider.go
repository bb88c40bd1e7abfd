package ports

import (
	"context"
	"errors"
)

// ErrFeedUnavailable indicates the pricing feed could not be reached or
// returned an unusable payload. Callers degrade rather than abort.
var ErrFeedUnavailable = errors.New("pricing feed unavailable")

// FeedPrice is one posted price on a feed record. Cash and credit postings
// are tracked separately; either may be absent.
type FeedPrice struct {
	Price      float64
	PostedTime string
}

// FeedGradePrice is a feed record's pricing for a single fuel grade.
type FeedGradePrice struct {
	FuelProduct string
	LongName    string
	Cash        *FeedPrice
	Credit      *FeedPrice
}

// FeedStationRecord is a station as reported by the crowd-sourced pricing
// feed, identified by its own coordinates and name rather than any shared
// key with the places lookup.
type FeedStationRecord struct {
	ID       string
	Name     string
	Address  string
	Lat      float64
	Lng      float64
	Currency string
	Prices   []FeedGradePrice
}

// Contract for looking up crowd-sourced station prices around a point.
type PricingFeedProvider interface {
	// LookupStationPrices returns feed records near (lat, lng).
	LookupStationPrices(ctx context.Context, lat, lng float64) ([]FeedStationRecord, error)
}
