package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fuel-route-service/internal/ports"
)

// Nationwide fallback used when a city is missing from the table.
var defaultRegionalPrice = ports.RegionalPrice{
	City:    "",
	Regular: 3.50,
	Premium: 4.10,
	Diesel:  3.80,
}

// SQLite-backed implementation of the RegionalPriceSource port.
type SqliteRegionalPrices struct{ DB *sql.DB }

func NewSqliteRegionalPrices(db *sql.DB) *SqliteRegionalPrices {
	return &SqliteRegionalPrices{DB: db}
}

// PriceForCity returns the stored row for a city; ok is false when the city
// is not covered by the table.
func (s *SqliteRegionalPrices) PriceForCity(
	ctx context.Context,
	city string,
) (ports.RegionalPrice, bool, error) {
	if s.DB == nil {
		return ports.RegionalPrice{}, false, errors.New("regional prices: DB is nil")
	}

	query := `
	SELECT
		city,
		regular,
		premium,
		diesel
	FROM regional_prices
	WHERE city = ?;
	`

	var p ports.RegionalPrice
	err := s.DB.QueryRowContext(ctx, query, city).Scan(&p.City, &p.Regular, &p.Premium, &p.Diesel)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.RegionalPrice{}, false, nil
	}
	if err != nil {
		return ports.RegionalPrice{}, false, fmt.Errorf("price for city %q: %w", city, err)
	}

	return p, true, nil
}

// Cities returns every city name in the table.
func (s *SqliteRegionalPrices) Cities(ctx context.Context) ([]string, error) {
	if s.DB == nil {
		return nil, errors.New("regional prices: DB is nil")
	}

	query := `
	SELECT city
	FROM regional_prices
	ORDER BY city;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cities: query regional_prices table: %w", err)
	}
	defer rows.Close()

	return scanStrings(rows, "list cities")
}

// DefaultPrice returns the nationwide fallback row.
func (s *SqliteRegionalPrices) DefaultPrice(ctx context.Context) (ports.RegionalPrice, error) {
	return defaultRegionalPrice, nil
}
