package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
)

type TripHandler struct {
	Routes ports.RouteProvider
	Prices ports.RegionalPriceSource
}

// Estimate orchestrates a full trip cost estimate: route lookup, tank size
// resolution, price selection, cost calculation and the refuel plan.
func (h *TripHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.TripEstimateRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}
	if req.Vehicle.FuelEfficiency <= 0 {
		writeError(w, r, http.StatusBadRequest, "vehicle.fuel_efficiency must be positive")
		return
	}

	route, err := h.Routes.ComputeRoute(r.Context(), req.Origin, req.Destination, req.Waypoints)
	if err != nil {
		if errors.Is(err, ports.ErrRouteNotFound) {
			writeError(w, r, http.StatusNotFound, "no route found")
			return
		}
		log.Printf("trip estimate: compute route failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "route provider unavailable")
		return
	}

	vehicle, tankSource := resolveVehicle(req.Vehicle)

	price, priceSource, priceCities, err := h.resolvePrice(r, req)
	if err != nil {
		log.Printf("trip estimate: price resolution failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	cost, err := services.CalculateTripCost(route, vehicle, price)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			writeError(w, r, http.StatusBadRequest, "invalid trip inputs")
			return
		}
		log.Printf("trip estimate: calculation failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	plan, err := services.PlanRefuelStops(route, vehicle, req.SafetyBuffer)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			writeError(w, r, http.StatusBadRequest, "invalid safety_buffer")
			return
		}
		log.Printf("trip estimate: refuel planning failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	fuelPerSegment, err := services.FuelPerSegment(plan, vehicle)
	if err != nil {
		log.Printf("trip estimate: fuel per segment failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	planDTO := make([]dto.RefuelPointResponse, 0, len(plan))
	for _, p := range plan {
		planDTO = append(planDTO, dto.RefuelPointResponse{
			CumulativeDistanceMiles: p.CumulativeDistanceMiles,
			SegmentIndex:            p.SegmentIndex,
			PercentOfTrip:           p.PercentOfTrip,
			Reason:                  string(p.Reason),
		})
	}

	res := dto.TripEstimateResponse{
		Route:           routeToDTO(route),
		FuelNeeded:      cost.FuelNeeded,
		TotalCost:       cost.TotalCost,
		CostPerMile:     cost.CostPerMile,
		PricePerUnit:    price.PricePerUnit,
		PriceSource:     priceSource,
		PriceCities:     priceCities,
		TankSizeGallons: vehicle.TankSizeGallons,
		TankSizeSource:  string(tankSource),
		RefuelPlan:      planDTO,
		FuelPerSegment:  fuelPerSegment,
	}

	writeJSON(w, r, http.StatusOK, res)
}

// resolveVehicle maps the request vehicle to the calculator's view, filling
// in the tank size through the capacity resolver when it was not supplied.
func resolveVehicle(v dto.TripVehicleRequest) (domain.VehicleInfo, domain.TankSizeSource) {
	info := domain.VehicleInfo{
		FuelEfficiency:  v.FuelEfficiency,
		Unit:            domain.EfficiencyUnit(v.EfficiencyUnit),
		TankSizeGallons: v.TankSizeGallons,
	}

	if v.TankSizeGallons > 0 {
		return info, domain.TankSizeManual
	}

	combined := v.CombinedMpg
	if combined == 0 && (v.EfficiencyUnit == "" || v.EfficiencyUnit == string(domain.UnitMpg)) {
		combined = v.FuelEfficiency
	}

	resolved := services.ResolveTankSize(domain.VehicleSpec{
		Year:        v.Year,
		Make:        v.Make,
		Model:       v.Model,
		FuelType:    domain.FuelType(v.FuelType),
		CombinedMpg: combined,
	})

	info.TankSizeGallons = resolved.TankSizeGallons
	return info, resolved.TankSizeSource
}

// resolvePrice prefers the caller-supplied price and otherwise averages the
// regional table over the trip's stop addresses.
func (h *TripHandler) resolvePrice(
	r *http.Request,
	req dto.TripEstimateRequest,
) (domain.FuelPrice, string, []string, error) {
	grade := domain.FuelType(req.Vehicle.FuelType)

	if req.FuelPricePerUnit != nil && *req.FuelPricePerUnit > 0 {
		price := domain.FuelPrice{PricePerUnit: *req.FuelPricePerUnit, Currency: "USD", Grade: grade}
		return price, "request", nil, nil
	}

	addresses := make([]string, 0, 2+len(req.Waypoints))
	addresses = append(addresses, req.Origin)
	addresses = append(addresses, req.Waypoints...)
	addresses = append(addresses, req.Destination)

	avg, cities, err := services.AverageRegionalPrice(r.Context(), h.Prices, addresses, grade)
	if err != nil {
		return domain.FuelPrice{}, "", nil, err
	}

	price := domain.FuelPrice{PricePerUnit: avg, Currency: "USD", Grade: grade}
	return price, "regional_average", cities, nil
}
