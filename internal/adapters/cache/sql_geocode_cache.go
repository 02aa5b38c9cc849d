package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"meetspot/internal/domain"
	"meetspot/internal/platform/obs"
	"meetspot/internal/ports"
)

// SQLGeocodeCache is a SQL-backed cache mapping (address, city) pairs to
// resolved locations. Geocoding results do not expire; an address does
// not move.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// Get returns the cached resolution for an address, or nil on a miss.
func (s *SQLGeocodeCache) Get(ctx context.Context, address, city string) (_ *ports.GeocodeResult, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return nil, errors.New("get geocode cache: address must not be empty")
	}

	q := `
	SELECT lon, lat, formatted_address, admin_level
    FROM geocode_cache
    WHERE address = $1
        AND city = $2;
	`

	var lon, lat float64
	var formatted, level string
	err = s.DB.QueryRowContext(ctx, q, address, city).Scan(&lon, &lat, &formatted, &level)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return &ports.GeocodeResult{
		Location:         domain.Coordinate{Lon: lon, Lat: lat},
		FormattedAddress: formatted,
		AdminLevel:       level,
	}, nil
}

// Put stores an address resolution, replacing any previous entry for
// the same (address, city) pair.
func (s *SQLGeocodeCache) Put(ctx context.Context, address, city string, result ports.GeocodeResult) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: address must not be empty")
	}

	q := `
	INSERT INTO geocode_cache (address, city, lon, lat, formatted_address, admin_level)
    VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (address, city) DO UPDATE
	SET lon = EXCLUDED.lon,
		lat = EXCLUDED.lat,
		formatted_address = EXCLUDED.formatted_address,
		admin_level = EXCLUDED.admin_level;
	`

	if _, err := s.DB.ExecContext(ctx, q, address, city,
		result.Location.Lon, result.Location.Lat,
		result.FormattedAddress, result.AdminLevel,
	); err != nil {
		return fmt.Errorf("insert geocode cache address=%q: %w", address, err)
	}

	return nil
}
