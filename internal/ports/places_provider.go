package ports

import (
	"context"

	"fuel-route-service/internal/domain"
)

// Contract for finding fuel stations near a point.
type PlacesProvider interface {
	// FindNearbyFuelStations returns candidate gas stations within
	// radiusMeters of location.
	FindNearbyFuelStations(ctx context.Context, location domain.Coordinates, radiusMeters float64) ([]domain.GasStationCandidate, error)
}
