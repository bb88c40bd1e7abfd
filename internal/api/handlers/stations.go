package handlers

import (
	"log"
	"net/http"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
)

type StationHandler struct {
	Places     ports.PlacesProvider
	Reconciler *services.Reconciler
}

// Prices reconciles station candidates against the pricing feed. Callers
// either send the candidate list directly or a coordinate to search around.
func (h *StationHandler) Prices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.StationPricesRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	candidates := make([]domain.GasStationCandidate, 0, len(req.Stations))
	for _, s := range req.Stations {
		candidates = append(candidates, domain.GasStationCandidate{
			Name:       s.Name,
			Address:    s.Address,
			Location:   domain.Coordinates{Lat: s.Lat, Lng: s.Lng},
			PriceLevel: s.PriceLevel,
		})
	}

	if len(candidates) == 0 {
		if req.Lat == nil || req.Lng == nil {
			writeError(w, r, http.StatusBadRequest, "stations or a lat/lng search point is required")
			return
		}

		found, err := h.Places.FindNearbyFuelStations(
			r.Context(),
			domain.Coordinates{Lat: *req.Lat, Lng: *req.Lng},
			req.RadiusMeters,
		)
		if err != nil {
			log.Printf("station prices: nearby search failed: %v", err)
			writeError(w, r, http.StatusBadGateway, "places provider unavailable")
			return
		}
		candidates = found
	}

	priced, err := h.Reconciler.Reconcile(r.Context(), candidates)
	if err != nil {
		log.Printf("station prices: reconcile failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.StationPricesResponse{Prices: make([]dto.PricedStationResponse, 0, len(priced))}
	for _, p := range priced {
		res.Prices = append(res.Prices, dto.PricedStationResponse{
			StationName:  p.StationName,
			Address:      p.Address,
			RegularPrice: p.RegularPrice,
			LastUpdated:  p.LastUpdated,
			Source:       string(p.Source),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
