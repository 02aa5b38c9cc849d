package cache

import (
	"database/sql"
	"fmt"
)

// InitSchema creates the lookup cache tables when they do not exist.
// Run by dbtool and on server startup; both are idempotent.
func InitSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS geocode_cache (
			address TEXT NOT NULL,
			city TEXT NOT NULL DEFAULT '',
			lon DOUBLE PRECISION NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			formatted_address TEXT NOT NULL DEFAULT '',
			admin_level TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (address, city)
		);`,
		`CREATE TABLE IF NOT EXISTS route_cache (
			origin TEXT NOT NULL,
			destination TEXT NOT NULL,
			mode TEXT NOT NULL,
			minutes DOUBLE PRECISION NOT NULL,
			distance_km DOUBLE PRECISION NOT NULL,
			walking_minutes DOUBLE PRECISION,
			vehicle_minutes DOUBLE PRECISION,
			transfer_minutes DOUBLE PRECISION,
			transfers INTEGER,
			PRIMARY KEY (origin, destination, mode)
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("init cache schema: %w", err)
		}
	}

	return nil
}
