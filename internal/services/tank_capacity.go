package services

import (
	"fmt"
	"log"
	"strings"

	"fuel-route-service/internal/domain"
)

// capacityRule is one entry in the ordered heuristic table: the first rule
// whose condition matches supplies the estimate.
type capacityRule struct {
	name    string
	matches func(spec domain.VehicleSpec) bool
	gallons float64
}

func modelContains(keywords ...string) func(domain.VehicleSpec) bool {
	return func(spec domain.VehicleSpec) bool {
		model := strings.ToLower(spec.Model)
		for _, k := range keywords {
			if strings.Contains(model, k) {
				return true
			}
		}
		return false
	}
}

func minCombinedMpg(mpg float64) func(domain.VehicleSpec) bool {
	return func(spec domain.VehicleSpec) bool {
		return spec.CombinedMpg >= mpg
	}
}

// Heuristic estimates by vehicle class: higher MPG typically means a smaller
// vehicle and a smaller tank. Evaluated top to bottom, first match wins; the
// final rule is a catch-all.
var heuristicRules = []capacityRule{
	{"diesel", func(s domain.VehicleSpec) bool { return s.FuelType == domain.FuelTypeDiesel }, 22.0},
	{"full-size truck", modelContains("f-150", "silverado", "sierra", "ram", "tacoma", "tundra", "titan"), 24.0},
	{"full-size suv", modelContains("explorer", "tahoe", "suburban", "yukon", "durango", "pilot", "highlander", "pathfinder", "4runner"), 20.0},
	{"hybrid / very efficient", minCombinedMpg(50), 10.5},
	{"high efficiency", minCombinedMpg(40), 11.5},
	{"compact sedan", minCombinedMpg(35), 13.0},
	{"mid-size sedan", minCombinedMpg(30), 14.5},
	{"large sedan / small suv", minCombinedMpg(25), 16.0},
	{"mid-size suv", minCombinedMpg(20), 18.0},
	{"large suv / small truck", minCombinedMpg(15), 21.0},
	{"large truck / performance", func(domain.VehicleSpec) bool { return true }, 23.0},
}

func capacityKey(year int, make, model string) string {
	return fmt.Sprintf("%d|%s|%s", year, make, model)
}

// ResolveTankSize fills in a vehicle's tank capacity when it is not already
// known, trying in order: exact (year, make, model) table lookup, a relaxed
// lookup ignoring year, then the heuristic class rules. The input spec is
// never mutated; a resolved copy is returned. Specs that already carry a
// positive tank size pass through unchanged, so resolution is idempotent.
func ResolveTankSize(spec domain.VehicleSpec) domain.VehicleSpec {
	if spec.TankSizeGallons > 0 {
		return spec
	}

	resolved := spec

	// Zero-gallon table entries (electric models) fall through to the
	// heuristic tiers rather than resolving to an unusable capacity.
	if gallons, ok := tankCapacityTable[capacityKey(spec.Year, spec.Make, spec.Model)]; ok && gallons > 0 {
		resolved.TankSizeGallons = gallons
		resolved.TankSizeSource = domain.TankSizeDatabase
		return resolved
	}

	// Relaxed lookup for model years outside the table's coverage.
	makeModel := fmt.Sprintf("%s|%s", spec.Make, spec.Model)
	for key, gallons := range tankCapacityTable {
		if gallons > 0 && strings.HasSuffix(key, makeModel) {
			resolved.TankSizeGallons = gallons
			resolved.TankSizeSource = domain.TankSizeDatabase
			return resolved
		}
	}

	for _, rule := range heuristicRules {
		if rule.matches(spec) {
			log.Printf(
				"tank capacity: estimated %s %s via %q rule: %.1f gal",
				spec.Make, spec.Model, rule.name, rule.gallons,
			)
			resolved.TankSizeGallons = rule.gallons
			resolved.TankSizeSource = domain.TankSizeEstimated
			return resolved
		}
	}

	// Unreachable: the rule table ends with a catch-all.
	return resolved
}
