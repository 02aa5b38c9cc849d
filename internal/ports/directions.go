package ports

import (
	"context"

	"meetspot/internal/domain"
)

// Contract for travel-time lookups between two coordinates, one method
// per transport mode. A nil route with a nil error means the provider
// found no path; callers decide whether absence is fatal.
type DirectionProvider interface {
	Driving(ctx context.Context, origin, destination domain.Coordinate) (*domain.Route, error)
	// Transit needs the city for providers that scope transit networks
	// administratively.
	Transit(ctx context.Context, origin, destination domain.Coordinate, city string) (*domain.Route, error)
	Cycling(ctx context.Context, origin, destination domain.Coordinate) (*domain.Route, error)
}
