package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"meetspot/internal/adapters/cache"
	"meetspot/internal/platform/db"
)

// dbtool initializes the lookup-cache schema so cache writes do not
// depend on server startup ordering in shared environments.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("MEETSPOT_DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal().Msg("MEETSPOT_DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open postgres")
	}
	defer pg.Close()

	log.Info().Msg("initializing cache schema")
	if err := cache.InitSchema(pg); err != nil {
		log.Fatal().Err(err).Msg("schema initialization failed")
	}
	log.Info().Msg("schema ready")
}
