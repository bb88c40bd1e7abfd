package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
)

type VehicleHandler struct {
	Catalog ports.VehicleCatalog
}

// Catalog serves the cascading vehicle picker queries: no params lists
// years, year lists makes, year+make lists models, and year+make+model
// returns full specs with the tank size resolved.
func (h *VehicleHandler) CatalogQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	yearParam := strings.TrimSpace(q.Get("year"))
	makeName := strings.TrimSpace(q.Get("make"))
	modelName := strings.TrimSpace(q.Get("model"))

	if yearParam == "" {
		years, err := h.Catalog.Years(r.Context())
		if err != nil {
			log.Printf("vehicle catalog: list years failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, r, http.StatusOK, dto.VehicleYearsResponse{Years: years})
		return
	}

	year, err := strconv.Atoi(yearParam)
	if err != nil || year <= 0 {
		writeError(w, r, http.StatusBadRequest, "year must be a positive integer")
		return
	}

	if makeName == "" {
		makes, err := h.Catalog.Makes(r.Context(), year)
		if err != nil {
			log.Printf("vehicle catalog: list makes failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, r, http.StatusOK, dto.VehicleMakesResponse{Makes: makes})
		return
	}

	if modelName == "" {
		models, err := h.Catalog.Models(r.Context(), year, makeName)
		if err != nil {
			log.Printf("vehicle catalog: list models failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, r, http.StatusOK, dto.VehicleModelsResponse{Models: models})
		return
	}

	specs, err := h.Catalog.LookupSpecs(r.Context(), year, makeName, modelName)
	if err != nil {
		log.Printf("vehicle catalog: lookup specs failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if len(specs) == 0 {
		writeError(w, r, http.StatusNotFound, "vehicle not found")
		return
	}

	res := dto.VehicleSpecsResponse{Vehicles: make([]dto.VehicleSpecResponse, 0, len(specs))}
	for _, spec := range specs {
		resolved := services.ResolveTankSize(spec)
		res.Vehicles = append(res.Vehicles, dto.VehicleSpecResponse{
			Year:            resolved.Year,
			Make:            resolved.Make,
			Model:           resolved.Model,
			Trim:            resolved.Trim,
			FuelType:        string(resolved.FuelType),
			CityMpg:         resolved.CityMpg,
			HighwayMpg:      resolved.HighwayMpg,
			CombinedMpg:     resolved.CombinedMpg,
			TankSizeGallons: resolved.TankSizeGallons,
			TankSizeSource:  string(resolved.TankSizeSource),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
