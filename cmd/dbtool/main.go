package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"fuel-route-service/internal/adapters/repositories"
	"fuel-route-service/internal/config"
	"fuel-route-service/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	sqlDB, driver, err := openDB()
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	vehicleSeedPath := config.Get("VEHICLE_SEED_PATH", "data/seeds/vehicles.json")
	priceSeedPath := config.Get("PRICE_SEED_PATH", "data/seeds/regional_prices.json")

	if err := initAndSeed(sqlDB, driver, vehicleSeedPath, priceSeedPath); err != nil {
		log.Fatal(err)
	}
}

// openDB targets Postgres when DATABASE_URL is set and the local SQLite
// file otherwise.
func openDB() (*sql.DB, repositories.Driver, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) != "" {
		log.Println("Connecting to postgres...")
		sqlDB, err := db.OpenPostgres(databaseURL)
		return sqlDB, repositories.DriverPostgres, err
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	log.Printf("Opening sqlite database path=%s", dbPath)
	sqlDB, err := db.OpenSQLite(dbPath)
	return sqlDB, repositories.DriverSQLite, err
}

func initAndSeed(sqlDB *sql.DB, driver repositories.Driver, vehicleSeedPath, priceSeedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(sqlDB); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding vehicles...")
	if err := repositories.SeedVehiclesFromJSON(sqlDB, driver, vehicleSeedPath); err != nil {
		log.Fatalf("vehicle seeding failed: %v", err)
	}

	log.Println("Seeding regional prices...")
	if err := repositories.SeedRegionalPricesFromJSON(sqlDB, driver, priceSeedPath); err != nil {
		log.Fatalf("price seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
