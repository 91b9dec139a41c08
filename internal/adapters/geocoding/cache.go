package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"attendancehub/internal/domain"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const cacheKeyPrefix = "geocode:"

// cachedResolver stores successful lookups in Redis and collapses
// concurrent lookups of the same address into one provider call.
type cachedResolver struct {
	next   domain.Geocoder
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
}

// NewCachedResolver wraps next with a Redis-backed cache. Cache failures are
// logged and the lookup falls through to next.
func NewCachedResolver(next domain.Geocoder, client *redis.Client, ttl time.Duration, logger *slog.Logger) domain.Geocoder {
	return &cachedResolver{next: next, client: client, ttl: ttl, logger: logger}
}

func cacheKey(address string) string {
	return cacheKeyPrefix + strings.ToLower(strings.Join(strings.Fields(address), " "))
}

func (c *cachedResolver) Resolve(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	key := cacheKey(address)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var res domain.GeocodeResult
		if jsonErr := json.Unmarshal(data, &res); jsonErr == nil {
			return &res, nil
		}
		c.logger.WarnContext(ctx, "discarding corrupt geocode cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "geocode cache read failed", "err", err)
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		res, err := c.next.Resolve(ctx, address)
		if err != nil {
			return nil, err
		}
		if raw, err := json.Marshal(res); err == nil {
			if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
				c.logger.WarnContext(ctx, "geocode cache write failed", "err", err)
			}
		}
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.GeocodeResult), nil
}
