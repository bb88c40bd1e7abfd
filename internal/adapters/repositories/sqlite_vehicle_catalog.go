package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fuel-route-service/internal/domain"
)

// SQLite-backed implementation of the VehicleCatalog port.
type SqliteVehicleCatalog struct{ DB *sql.DB }

func NewSqliteVehicleCatalog(db *sql.DB) *SqliteVehicleCatalog {
	return &SqliteVehicleCatalog{DB: db}
}

// Years returns the model years in the catalog, newest first.
func (s *SqliteVehicleCatalog) Years(ctx context.Context) ([]int, error) {
	if s.DB == nil {
		return nil, errors.New("vehicle catalog: DB is nil")
	}

	query := `
	SELECT DISTINCT year
	FROM vehicles
	ORDER BY year DESC;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list years: query vehicles table: %w", err)
	}
	defer rows.Close()

	years := make([]int, 0, 16)
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("list years: scan row: %w", err)
		}
		years = append(years, y)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list years: row iteration: %w", err)
	}

	return years, nil
}

// Makes returns the manufacturers with entries for the given year.
func (s *SqliteVehicleCatalog) Makes(ctx context.Context, year int) ([]string, error) {
	if s.DB == nil {
		return nil, errors.New("vehicle catalog: DB is nil")
	}

	query := `
	SELECT DISTINCT make
	FROM vehicles
	WHERE year = ?
	ORDER BY make;
	`
	rows, err := s.DB.QueryContext(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("list makes: query vehicles table: %w", err)
	}
	defer rows.Close()

	return scanStrings(rows, "list makes")
}

// Models returns the models for a year and make.
func (s *SqliteVehicleCatalog) Models(ctx context.Context, year int, makeName string) ([]string, error) {
	if s.DB == nil {
		return nil, errors.New("vehicle catalog: DB is nil")
	}

	query := `
	SELECT DISTINCT model
	FROM vehicles
	WHERE year = ? AND make = ?
	ORDER BY model;
	`
	rows, err := s.DB.QueryContext(ctx, query, year, makeName)
	if err != nil {
		return nil, fmt.Errorf("list models: query vehicles table: %w", err)
	}
	defer rows.Close()

	return scanStrings(rows, "list models")
}

// LookupSpecs returns every trim matching (year, make, model).
func (s *SqliteVehicleCatalog) LookupSpecs(
	ctx context.Context,
	year int,
	makeName, modelName string,
) ([]domain.VehicleSpec, error) {
	if s.DB == nil {
		return nil, errors.New("vehicle catalog: DB is nil")
	}

	query := `
	SELECT
		year,
		make,
		model,
		trim,
		fuel_type,
		city_mpg,
		highway_mpg,
		combined_mpg,
		tank_size_gallons,
		tank_size_source
	FROM vehicles
	WHERE year = ? AND make = ? AND model = ?
	ORDER BY trim;
	`
	rows, err := s.DB.QueryContext(ctx, query, year, makeName, modelName)
	if err != nil {
		return nil, fmt.Errorf("lookup specs: query vehicles table: %w", err)
	}
	defer rows.Close()

	specs := make([]domain.VehicleSpec, 0, 4)
	for rows.Next() {
		var spec domain.VehicleSpec
		var fuelType, tankSource string
		err := rows.Scan(
			&spec.Year, &spec.Make, &spec.Model, &spec.Trim, &fuelType,
			&spec.CityMpg, &spec.HighwayMpg, &spec.CombinedMpg,
			&spec.TankSizeGallons, &tankSource,
		)
		if err != nil {
			return nil, fmt.Errorf("lookup specs: scan row: %w", err)
		}
		spec.FuelType = domain.FuelType(fuelType)
		spec.TankSizeSource = domain.TankSizeSource(tankSource)
		specs = append(specs, spec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lookup specs: row iteration: %w", err)
	}

	return specs, nil
}

func scanStrings(rows *sql.Rows, op string) ([]string, error) {
	values := make([]string, 0, 32)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: row iteration: %w", op, err)
	}

	return values, nil
}
