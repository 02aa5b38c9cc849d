package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"meetspot/internal/adapters/amap"
	"meetspot/internal/adapters/cache"
	"meetspot/internal/api"
	"meetspot/internal/config"
	"meetspot/internal/logging"
	"meetspot/internal/platform/db"
	"meetspot/internal/ports"
	"meetspot/internal/services"
)

// main is the application composition root. It wires concrete adapters
// (AMap, Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load configuration")
	}

	logging.Init(cfg.LogLevel, cfg.LogFormat)

	// Persistent lookup caches are optional; without them every planning
	// run goes to the network.
	var geocodeCache ports.GeocodeCache
	var routeCache ports.RouteCache
	if cfg.DatabaseURL != "" {
		pg, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("open postgres")
		}
		defer pg.Close()

		if err := cache.InitSchema(pg); err != nil {
			log.Fatal().Err(err).Msg("init cache schema")
		}

		geocodeCache = cache.NewSQLGeocodeCache(pg)
		routeCache = cache.NewSQLRouteCache(pg)
	}

	var placeCache ports.PlaceCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer rdb.Close()

		placeCache = cache.NewRedisPlaceCache(rdb, cfg.PlaceCacheTTL)
	}

	provider, err := amap.NewClient(cfg.AmapKey, geocodeCache, routeCache, placeCache)
	if err != nil {
		log.Fatal().Err(err).Msg("build amap client")
	}

	planner := &services.Planner{
		Geocoder:         provider,
		Directions:       provider,
		Places:           provider,
		MaxDetailLookups: cfg.MaxDetailLookups,
		Concurrency:      cfg.LookupConcurrency,
	}

	router := api.NewRouter(planner)

	// Timeouts are tuned for cold-cache planning runs (external API
	// latency across geocode, directions, and place lookups).
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("server listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
