package ports

import (
	"context"

	"fuel-route-service/internal/domain"
)

// Port: a boundary for querying the static vehicle specification dataset.
type VehicleCatalog interface {
	// Years returns the model years present in the catalog, newest first.
	Years(ctx context.Context) ([]int, error)
	// Makes returns the manufacturers with entries for the given year.
	Makes(ctx context.Context, year int) ([]string, error)
	// Models returns the models for a year and make.
	Models(ctx context.Context, year int, makeName string) ([]string, error)
	// LookupSpecs returns all trims matching (year, make, model).
	LookupSpecs(ctx context.Context, year int, makeName, modelName string) ([]domain.VehicleSpec, error)
}
