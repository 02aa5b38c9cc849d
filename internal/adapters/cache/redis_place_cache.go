package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"meetspot/internal/platform/obs"
	"meetspot/internal/ports"
)

// RedisPlaceCache holds place details in Redis with a TTL. Place data
// goes stale (ratings move, venues close), so unlike the SQL caches the
// entries expire.
type RedisPlaceCache struct {
	rdb *redis.Client
	ttl time.Duration
}

const placeKeyPrefix = "place:"

func NewRedisPlaceCache(rdb *redis.Client, ttl time.Duration) *RedisPlaceCache {
	return &RedisPlaceCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached detail for a place id, or nil on a miss. A
// corrupt entry is treated as a miss rather than an error.
func (r *RedisPlaceCache) Get(ctx context.Context, id string) (_ *ports.PlaceDetail, err error) {
	defer obs.Time(ctx, "place.cache.Get")(&err)

	if r.rdb == nil {
		return nil, errors.New("place cache: redis client is nil")
	}

	raw, err := r.rdb.Get(ctx, placeKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get place cache id=%q: %w", id, err)
	}

	var detail ports.PlaceDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, nil
	}

	return &detail, nil
}

// Put stores a place detail under its id for the configured TTL.
func (r *RedisPlaceCache) Put(ctx context.Context, id string, detail ports.PlaceDetail) error {
	if r.rdb == nil {
		return errors.New("place cache: redis client is nil")
	}

	raw, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("insert place cache id=%q: marshal: %w", id, err)
	}

	if err := r.rdb.Set(ctx, placeKeyPrefix+id, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("insert place cache id=%q: %w", id, err)
	}

	return nil
}
