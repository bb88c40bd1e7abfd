package services

import (
	"testing"

	"fuel-route-service/internal/domain"
)

func TestResolveTankSizeExactMatch(t *testing.T) {
	spec := domain.VehicleSpec{Year: 2024, Make: "Honda", Model: "Civic", CombinedMpg: 36}

	resolved := ResolveTankSize(spec)
	if resolved.TankSizeGallons != 12.4 {
		t.Fatalf("expected 12.4 gal from table, got %v", resolved.TankSizeGallons)
	}
	if resolved.TankSizeSource != domain.TankSizeDatabase {
		t.Fatalf("expected database source, got %q", resolved.TankSizeSource)
	}
}

func TestResolveTankSizeRelaxedYearMatch(t *testing.T) {
	// 2021 is outside the table's coverage; the make/model fallback still
	// finds a Civic entry.
	spec := domain.VehicleSpec{Year: 2021, Make: "Honda", Model: "Civic", CombinedMpg: 36}

	resolved := ResolveTankSize(spec)
	if resolved.TankSizeGallons != 12.4 {
		t.Fatalf("expected 12.4 gal from relaxed lookup, got %v", resolved.TankSizeGallons)
	}
	if resolved.TankSizeSource != domain.TankSizeDatabase {
		t.Fatalf("expected database source, got %q", resolved.TankSizeSource)
	}
}

func TestResolveTankSizeKnownCapacityPassesThrough(t *testing.T) {
	spec := domain.VehicleSpec{
		Year: 2024, Make: "Honda", Model: "Civic",
		TankSizeGallons: 18.0, TankSizeSource: domain.TankSizeManual,
	}

	resolved := ResolveTankSize(spec)
	if resolved != spec {
		t.Fatalf("expected passthrough, got %+v", resolved)
	}

	// Resolving twice never changes an already-resolved spec.
	again := ResolveTankSize(ResolveTankSize(domain.VehicleSpec{Year: 2024, Make: "Honda", Model: "Civic"}))
	if again.TankSizeGallons != 12.4 || again.TankSizeSource != domain.TankSizeDatabase {
		t.Fatalf("resolution is not idempotent: %+v", again)
	}
}

func TestResolveTankSizeHeuristics(t *testing.T) {
	cases := []struct {
		name    string
		spec    domain.VehicleSpec
		gallons float64
	}{
		{
			name:    "diesel outranks everything",
			spec:    domain.VehicleSpec{Make: "Volvo", Model: "XC90", FuelType: domain.FuelTypeDiesel, CombinedMpg: 55},
			gallons: 22.0,
		},
		{
			name:    "full-size truck by model keyword",
			spec:    domain.VehicleSpec{Make: "Chevrolet", Model: "Silverado 2500", CombinedMpg: 16},
			gallons: 24.0,
		},
		{
			name:    "full-size suv by model keyword",
			spec:    domain.VehicleSpec{Make: "Chevy", Model: "Tahoe Hybrid", CombinedMpg: 21},
			gallons: 20.0,
		},
		{
			name:    "hybrid tier at 50 mpg",
			spec:    domain.VehicleSpec{Make: "Genesis", Model: "Eco", CombinedMpg: 52},
			gallons: 10.5,
		},
		{
			name:    "40 mpg boundary is inclusive",
			spec:    domain.VehicleSpec{Make: "Genesis", Model: "G70", CombinedMpg: 40},
			gallons: 11.5,
		},
		{
			name:    "mid-size sedan tier",
			spec:    domain.VehicleSpec{Make: "Genesis", Model: "G80", CombinedMpg: 34},
			gallons: 14.5,
		},
		{
			name:    "large suv tier",
			spec:    domain.VehicleSpec{Make: "Genesis", Model: "GV80", CombinedMpg: 15},
			gallons: 21.0,
		},
		{
			name:    "catch-all",
			spec:    domain.VehicleSpec{Make: "Genesis", Model: "GV90", CombinedMpg: 10},
			gallons: 23.0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolved := ResolveTankSize(tc.spec)
			if resolved.TankSizeGallons != tc.gallons {
				t.Fatalf("expected %.1f gal, got %v", tc.gallons, resolved.TankSizeGallons)
			}
			if resolved.TankSizeSource != domain.TankSizeEstimated {
				t.Fatalf("expected estimated source, got %q", resolved.TankSizeSource)
			}
		})
	}
}

func TestResolveTankSizeElectricFallsThroughToHeuristics(t *testing.T) {
	// Tesla entries carry a zero-gallon capacity; they must not resolve as
	// a usable database value.
	spec := domain.VehicleSpec{Year: 2024, Make: "Tesla", Model: "Model 3"}

	resolved := ResolveTankSize(spec)
	if resolved.TankSizeSource != domain.TankSizeEstimated {
		t.Fatalf("expected heuristic estimate for electric model, got %q", resolved.TankSizeSource)
	}
	if resolved.TankSizeGallons != 23.0 {
		t.Fatalf("expected catch-all estimate, got %v", resolved.TankSizeGallons)
	}
}
