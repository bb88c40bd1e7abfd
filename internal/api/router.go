package api

import (
	"net/http"

	"fuel-route-service/internal/api/handlers"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	routes ports.RouteProvider,
	places ports.PlacesProvider,
	reconciler *services.Reconciler,
	catalog ports.VehicleCatalog,
	regionalPrices ports.RegionalPriceSource,
) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Provider: routes}
	tripHandler := &handlers.TripHandler{Routes: routes, Prices: regionalPrices}
	stationHandler := &handlers.StationHandler{Places: places, Reconciler: reconciler}
	vehicleHandler := &handlers.VehicleHandler{Catalog: catalog}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes", routeHandler.Route)
	mux.HandleFunc("/trips/estimate", tripHandler.Estimate)
	mux.HandleFunc("/stations/prices", stationHandler.Prices)
	mux.HandleFunc("/vehicles", vehicleHandler.CatalogQuery)

	return loggingMiddleware(mux)
}
