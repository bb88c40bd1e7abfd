package ports

import (
	"context"
	"errors"

	"fuel-route-service/internal/domain"
)

// ErrRouteNotFound indicates the provider found no drivable route between
// the requested locations.
var ErrRouteNotFound = errors.New("no route found")

// Contract for computing a drivable route between two addresses with
// optional intermediate waypoints.
type RouteProvider interface {
	// ComputeRoute returns distance, duration and per-leg detail for the
	// best route from origin to destination through waypoints in order.
	ComputeRoute(ctx context.Context, origin, destination string, waypoints []string) (domain.RouteInfo, error)
}
