package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/adapters/places"
	"fuel-route-service/internal/adapters/pricingfeed"
	"fuel-route-service/internal/adapters/repositories"
	"fuel-route-service/internal/adapters/routing"
	"fuel-route-service/internal/api"
	"fuel-route-service/internal/config"
	"fuel-route-service/internal/platform/db"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Google, GasBuddy, Redis) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	vehicleSeedPath := config.Get("VEHICLE_SEED_PATH", "data/seeds/vehicles.json")
	priceSeedPath := config.Get("PRICE_SEED_PATH", "data/seeds/regional_prices.json")
	port := config.Get("PORT", "8080")

	mapsKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if strings.TrimSpace(mapsKey) == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}

	sqlDB, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	// Initialize schema and seed reference data on startup for local runs.
	if err := initAndSeed(sqlDB, vehicleSeedPath, priceSeedPath); err != nil {
		log.Fatal(err)
	}

	routeProvider, err := routing.NewGoogleRoutesProvider(mapsKey)
	if err != nil {
		log.Fatal(err)
	}
	placesProvider, err := places.NewGooglePlacesProvider(mapsKey)
	if err != nil {
		log.Fatal(err)
	}

	reconciler := services.NewReconciler(pricingfeed.NewGasBuddyProvider(), newPriceCache())

	catalog := repositories.NewSqliteVehicleCatalog(sqlDB)
	regionalPrices := repositories.NewSqliteRegionalPrices(sqlDB)

	router := api.NewRouter(routeProvider, placesProvider, reconciler, catalog, regionalPrices)

	// Timeouts are tuned for cold-cache estimates (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// newPriceCache returns the Redis-backed feed cache when REDIS_ADDR is set,
// falling back to the in-process cache otherwise.
func newPriceCache() ports.PriceCache {
	redisAddr := os.Getenv("REDIS_ADDR")
	if strings.TrimSpace(redisAddr) == "" {
		return cache.NewMemoryPriceCache(cache.DefaultPriceTTL)
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	log.Printf("Using redis price cache addr=%s", redisAddr)
	return cache.NewRedisPriceCache(client, cache.DefaultPriceTTL)
}

func initAndSeed(sqlDB *sql.DB, vehicleSeedPath, priceSeedPath string) error {
	if err := repositories.InitSchema(sqlDB); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedVehiclesFromJSON(sqlDB, repositories.DriverSQLite, vehicleSeedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedRegionalPricesFromJSON(sqlDB, repositories.DriverSQLite, priceSeedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
