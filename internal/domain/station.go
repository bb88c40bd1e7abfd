package domain

// GasStationCandidate is a station returned by a places lookup.
// Read-only input to price reconciliation.
type GasStationCandidate struct {
	Name     string
	Address  string
	Location Coordinates
	// PriceLevel is the places provider's 1-4 cost ordinal, 0 when absent.
	PriceLevel int
}

// PriceSource records where a station's price figure came from.
type PriceSource string

const (
	PriceSourceFeed            PriceSource = "pricing_feed"
	PriceSourceRegionalAverage PriceSource = "regional_average"
)

// PricedStation is a candidate station annotated with a reconciled price.
type PricedStation struct {
	StationName string
	Address     string
	// RegularPrice is nil when the matched feed record carried no usable
	// regular-grade price.
	RegularPrice *float64
	LastUpdated  string
	Source       PriceSource
}
