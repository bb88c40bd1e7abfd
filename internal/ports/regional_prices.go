package ports

import (
	"context"

	"fuel-route-service/internal/domain"
)

// RegionalPrice is one city row from the regional fuel price table.
type RegionalPrice struct {
	City    string
	Regular float64
	Premium float64
	Diesel  float64
}

// Port: a boundary for the periodically updated regional fuel price dataset.
// Used as the price source when no live feed data is available.
type RegionalPriceSource interface {
	// PriceForCity returns the price row for a city, or ok=false when the
	// city is not in the table.
	PriceForCity(ctx context.Context, city string) (RegionalPrice, bool, error)
	// Cities returns every city the table covers.
	Cities(ctx context.Context) ([]string, error)
	// DefaultPrice returns the nationwide fallback row.
	DefaultPrice(ctx context.Context) (RegionalPrice, error)
}

// GradePrice selects the column for a fuel grade, defaulting to regular
// for unknown grades.
func (p RegionalPrice) GradePrice(grade domain.FuelType) float64 {
	switch grade {
	case domain.FuelTypePremium:
		return p.Premium
	case domain.FuelTypeDiesel:
		return p.Diesel
	default:
		return p.Regular
	}
}
