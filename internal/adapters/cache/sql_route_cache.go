package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"meetspot/internal/domain"
	"meetspot/internal/platform/obs"
)

// SQLRouteCache is a SQL-backed cache for direction lookups, keyed by
// origin, destination, and transport mode. Coordinates are stored in
// their canonical "lon,lat" text form so the key survives float
// round-tripping.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

// Get returns the cached route for an (origin, destination, mode)
// triple, or nil on a miss.
func (s *SQLRouteCache) Get(
	ctx context.Context,
	origin, destination domain.Coordinate,
	mode domain.TransportMode,
) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("route cache: db is nil")
	}

	q := `
	SELECT minutes, distance_km, walking_minutes, vehicle_minutes, transfer_minutes, transfers
    FROM route_cache
    WHERE origin = $1
        AND destination = $2
        AND mode = $3;
	`

	var minutes, km float64
	var walking, vehicle, transfer sql.NullFloat64
	var transfers sql.NullInt64
	err = s.DB.QueryRowContext(ctx, q, origin.String(), destination.String(), string(mode)).
		Scan(&minutes, &km, &walking, &vehicle, &transfer, &transfers)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	route := &domain.Route{Mode: mode, Minutes: minutes, DistanceKm: km}
	if mode == domain.ModeTransit && transfers.Valid {
		route.Transit = &domain.TransitDetail{
			WalkingMinutes:   walking.Float64,
			InVehicleMinutes: vehicle.Float64,
			TransferMinutes:  transfer.Float64,
			Transfers:        int(transfers.Int64),
		}
	}

	return route, nil
}

// Put stores a route result, replacing any previous entry for the same
// key.
func (s *SQLRouteCache) Put(ctx context.Context, origin, destination domain.Coordinate, route domain.Route) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if route.Mode == "" || route.Mode == domain.ModeNone {
		return fmt.Errorf("insert route cache: unusable mode %q", route.Mode)
	}

	var walking, vehicle, transfer sql.NullFloat64
	var transfers sql.NullInt64
	if route.Transit != nil {
		walking = sql.NullFloat64{Float64: route.Transit.WalkingMinutes, Valid: true}
		vehicle = sql.NullFloat64{Float64: route.Transit.InVehicleMinutes, Valid: true}
		transfer = sql.NullFloat64{Float64: route.Transit.TransferMinutes, Valid: true}
		transfers = sql.NullInt64{Int64: int64(route.Transit.Transfers), Valid: true}
	}

	q := `
	INSERT INTO route_cache (origin, destination, mode, minutes, distance_km,
		walking_minutes, vehicle_minutes, transfer_minutes, transfers)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (origin, destination, mode) DO UPDATE
	SET minutes = EXCLUDED.minutes,
		distance_km = EXCLUDED.distance_km,
		walking_minutes = EXCLUDED.walking_minutes,
		vehicle_minutes = EXCLUDED.vehicle_minutes,
		transfer_minutes = EXCLUDED.transfer_minutes,
		transfers = EXCLUDED.transfers;
	`

	if _, err := s.DB.ExecContext(ctx, q,
		origin.String(), destination.String(), string(route.Mode),
		route.Minutes, route.DistanceKm,
		walking, vehicle, transfer, transfers,
	); err != nil {
		return fmt.Errorf("insert route cache mode=%q: %w", route.Mode, err)
	}

	return nil
}
