package domain

// FuelType is the fuel grade a vehicle is rated for.
type FuelType string

const (
	FuelTypeRegular FuelType = "regular"
	FuelTypePremium FuelType = "premium"
	FuelTypeDiesel  FuelType = "diesel"
)

// TankSizeSource records where a vehicle's tank capacity figure came from,
// so downstream consumers can disclose data confidence.
type TankSizeSource string

const (
	TankSizeDatabase  TankSizeSource = "database"
	TankSizeEstimated TankSizeSource = "estimated"
	TankSizeManual    TankSizeSource = "manual"
	TankSizeUnknown   TankSizeSource = "unknown"
)

// VehicleSpec describes a catalog vehicle and its fuel economy ratings.
// TankSizeGallons is zero until resolved; resolution produces a new copy
// and never mutates the original.
type VehicleSpec struct {
	Year            int
	Make            string
	Model           string
	Trim            string
	FuelType        FuelType
	CityMpg         float64
	HighwayMpg      float64
	CombinedMpg     float64
	TankSizeGallons float64
	TankSizeSource  TankSizeSource
}

// EfficiencyUnit selects how VehicleInfo.FuelEfficiency is interpreted.
type EfficiencyUnit string

const (
	UnitMpg       EfficiencyUnit = "mpg"
	UnitLPer100Km EfficiencyUnit = "l_per_100km"
)

// VehicleInfo is the per-calculation view of a vehicle: a single efficiency
// figure, its unit, and the usable tank size. Cost math uses whichever
// efficiency the caller chose (combined for cost, highway for range).
type VehicleInfo struct {
	FuelEfficiency  float64
	Unit            EfficiencyUnit
	TankSizeGallons float64
}

// FuelPrice is one price-per-unit quote used for a single cost calculation.
type FuelPrice struct {
	PricePerUnit float64
	Currency     string
	Grade        FuelType
}
