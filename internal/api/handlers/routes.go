package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/ports"
)

type RouteHandler struct {
	Provider ports.RouteProvider
}

// Route computes a driving route through the requested stops.
func (h *RouteHandler) Route(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	route, err := h.Provider.ComputeRoute(r.Context(), req.Origin, req.Destination, req.Waypoints)
	if err != nil {
		if errors.Is(err, ports.ErrRouteNotFound) {
			writeError(w, r, http.StatusNotFound, "no route found")
			return
		}
		log.Printf("compute route failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "route provider unavailable")
		return
	}

	writeJSON(w, r, http.StatusOK, routeToDTO(route))
}
