package ports

import (
	"context"

	"meetspot/internal/domain"
)

// Lookup caches owned by the provider adapters. The planning core never
// observes whether an input was a cache hit or a fresh lookup, so cache
// failures must degrade to misses rather than abort a run.

// GeocodeCache persists address resolutions keyed by (address, city).
// Get returns nil on a miss.
type GeocodeCache interface {
	Get(ctx context.Context, address, city string) (*GeocodeResult, error)
	Put(ctx context.Context, address, city string, result GeocodeResult) error
}

// RouteCache persists direction lookups keyed by (origin, destination,
// mode). Get returns nil on a miss.
type RouteCache interface {
	Get(ctx context.Context, origin, destination domain.Coordinate, mode domain.TransportMode) (*domain.Route, error)
	Put(ctx context.Context, origin, destination domain.Coordinate, route domain.Route) error
}

// PlaceCache holds place details for a bounded time. Get returns nil on
// a miss.
type PlaceCache interface {
	Get(ctx context.Context, id string) (*PlaceDetail, error)
	Put(ctx context.Context, id string, detail PlaceDetail) error
}
