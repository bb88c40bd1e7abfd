package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeStrict decodes exactly one JSON object, rejecting unknown fields
// and trailing content.
func decodeStrict(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errTrailingBody
	}
	return nil
}

var errTrailingBody = &trailingBodyError{}

type trailingBodyError struct{}

func (*trailingBodyError) Error() string { return "body must contain only one JSON object" }

func routeToDTO(route domain.RouteInfo) dto.RouteResponse {
	legs := make([]dto.RouteLegResponse, 0, len(route.Legs))
	for _, leg := range route.Legs {
		legs = append(legs, dto.RouteLegResponse{
			StartAddress:    leg.StartAddress,
			EndAddress:      leg.EndAddress,
			DistanceMeters:  leg.DistanceMeters,
			DistanceMiles:   leg.DistanceMiles(),
			DurationSeconds: leg.DurationSeconds,
			Polyline:        leg.Polyline,
		})
	}

	return dto.RouteResponse{
		DistanceMeters:  route.DistanceMeters,
		DistanceMiles:   route.DistanceMiles(),
		DurationSeconds: route.DurationSeconds,
		DurationText:    route.DurationFormatted(),
		Polyline:        route.Polyline,
		Legs:            legs,
	}
}
