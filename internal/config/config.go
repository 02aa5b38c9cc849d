// Package config loads service configuration in two layers: struct
// defaults overridden by MEETSPOT_-prefixed environment variables
// (MEETSPOT_AMAP_KEY -> amap_key).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "MEETSPOT_"

type Config struct {
	Port int `koanf:"port"`

	// AmapKey is the mapping-provider web-service key. Required.
	AmapKey string `koanf:"amap_key"`

	// DatabaseURL enables the persistent geocode/route caches when set.
	DatabaseURL string `koanf:"database_url"`

	// RedisAddr enables the place-detail cache when set.
	RedisAddr     string        `koanf:"redis_addr"`
	RedisPassword string        `koanf:"redis_password"`
	PlaceCacheTTL time.Duration `koanf:"place_cache_ttl"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// MaxDetailLookups caps place detail lookups per planning run.
	MaxDetailLookups int `koanf:"max_detail_lookups"`

	// LookupConcurrency bounds parallel external lookups.
	LookupConcurrency int `koanf:"lookup_concurrency"`
}

func defaultConfig() *Config {
	return &Config{
		Port:              8080,
		PlaceCacheTTL:     24 * time.Hour,
		LogLevel:          "info",
		LogFormat:         "json",
		MaxDetailLookups:  25,
		LookupConcurrency: 5,
	}
}

// Load builds the effective configuration: defaults first, environment
// overrides second.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if strings.TrimSpace(cfg.AmapKey) == "" {
		return nil, fmt.Errorf("config: MEETSPOT_AMAP_KEY is required")
	}

	return cfg, nil
}
