package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Driver selects the placeholder and upsert dialect for seeding statements.
// The schema statements themselves are portable across both.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Initialize the reference-data schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createVehiclesQuery := `
	CREATE TABLE IF NOT EXISTS vehicles (
		vehicle_id INTEGER PRIMARY KEY,
		year INTEGER NOT NULL,
		make TEXT NOT NULL,
		model TEXT NOT NULL,
		trim TEXT NOT NULL DEFAULT '',
		fuel_type TEXT NOT NULL,
		city_mpg REAL NOT NULL,
		highway_mpg REAL NOT NULL,
		combined_mpg REAL NOT NULL,
		tank_size_gallons REAL NOT NULL,
		tank_size_source TEXT NOT NULL
	);
	`

	createRegionalPricesQuery := `
	CREATE TABLE IF NOT EXISTS regional_prices (
		city TEXT PRIMARY KEY,
		regular REAL NOT NULL,
		premium REAL NOT NULL,
		diesel REAL NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_vehicles_year_make_model
	ON vehicles(year, make, model);
	`

	statements := []string{
		createVehiclesQuery,
		createRegionalPricesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type VehicleSeed struct {
	VehicleID       int     `json:"vehicle_id"`
	Year            int     `json:"year"`
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	Trim            string  `json:"trim"`
	FuelType        string  `json:"fuel_type"`
	CityMpg         float64 `json:"city_mpg"`
	HighwayMpg      float64 `json:"highway_mpg"`
	CombinedMpg     float64 `json:"combined_mpg"`
	TankSizeGallons float64 `json:"tank_size_gallons"`
	TankSizeSource  string  `json:"tank_size_source"`
}

func vehicleUpsertQuery(driver Driver) string {
	if driver == DriverPostgres {
		return `
		INSERT INTO vehicles (
			vehicle_id,
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
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (vehicle_id) DO UPDATE SET
			year = EXCLUDED.year,
			make = EXCLUDED.make,
			model = EXCLUDED.model,
			trim = EXCLUDED.trim,
			fuel_type = EXCLUDED.fuel_type,
			city_mpg = EXCLUDED.city_mpg,
			highway_mpg = EXCLUDED.highway_mpg,
			combined_mpg = EXCLUDED.combined_mpg,
			tank_size_gallons = EXCLUDED.tank_size_gallons,
			tank_size_source = EXCLUDED.tank_size_source;
		`
	}

	return `
	INSERT OR REPLACE INTO vehicles (
		vehicle_id,
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
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
}

func regionalPriceUpsertQuery(driver Driver) string {
	if driver == DriverPostgres {
		return `
		INSERT INTO regional_prices (
			city,
			regular,
			premium,
			diesel
		)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (city) DO UPDATE SET
			regular = EXCLUDED.regular,
			premium = EXCLUDED.premium,
			diesel = EXCLUDED.diesel;
		`
	}

	return `
	INSERT OR REPLACE INTO regional_prices (
		city,
		regular,
		premium,
		diesel
	)
	VALUES (?, ?, ?, ?);
	`
}

// Populate the vehicles table from a JSON file.
func SeedVehiclesFromJSON(db *sql.DB, driver Driver, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed vehicles: read %q: %w", jsonPath, err)
	}

	var data []VehicleSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed vehicles: parse json: %w", err)
	}

	for i, v := range data {
		if v.VehicleID <= 0 {
			return fmt.Errorf("seed vehicles: invalid vehicle_id at index %d: %d", i+1, v.VehicleID)
		}
		if v.Year <= 0 || strings.TrimSpace(v.Make) == "" || strings.TrimSpace(v.Model) == "" {
			return fmt.Errorf("seed vehicles: incomplete entry at index %d", i+1)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed vehicles: begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(vehicleUpsertQuery(driver))
	if err != nil {
		return fmt.Errorf("seed vehicles: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, v := range data {
		_, err := stmt.Exec(
			v.VehicleID, v.Year, v.Make, v.Model, v.Trim, v.FuelType,
			v.CityMpg, v.HighwayMpg, v.CombinedMpg, v.TankSizeGallons, v.TankSizeSource,
		)
		if err != nil {
			return fmt.Errorf("seed vehicles: insert vehicle_id=%d: %w", v.VehicleID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed vehicles: commit tx: %w", err)
	}

	return nil
}

type RegionalPriceSeed struct {
	City    string  `json:"city"`
	Regular float64 `json:"regular"`
	Premium float64 `json:"premium"`
	Diesel  float64 `json:"diesel"`
}

// Populate the regional_prices table from a JSON file.
func SeedRegionalPricesFromJSON(db *sql.DB, driver Driver, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed regional prices: read %q: %w", jsonPath, err)
	}

	var data []RegionalPriceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed regional prices: parse json: %w", err)
	}

	for i, p := range data {
		if strings.TrimSpace(p.City) == "" {
			return fmt.Errorf("seed regional prices: empty city at index %d", i+1)
		}
		if p.Regular <= 0 || p.Premium <= 0 || p.Diesel <= 0 {
			return fmt.Errorf("seed regional prices: non-positive price for %q", p.City)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed regional prices: begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(regionalPriceUpsertQuery(driver))
	if err != nil {
		return fmt.Errorf("seed regional prices: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range data {
		if _, err := stmt.Exec(p.City, p.Regular, p.Premium, p.Diesel); err != nil {
			return fmt.Errorf("seed regional prices: insert city=%q: %w", p.City, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed regional prices: commit tx: %w", err)
	}

	return nil
}
