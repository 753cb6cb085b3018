// Package cache is a read-through cache for query results. Entries are keyed by a
// hash of the normalized request and a generation counter; bumping the
// generation invalidates every entry at once.
package cache

//go:generate go run go.uber.org/mock/mockgen@latest -source=cache.go -destination=mocks_test.go -package=cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hunt-server/internal/clients/redis"
	"hunt-server/internal/observability"

	"golang.org/x/sync/singleflight"
)

const generationKey = "hunt:cache:generation"

// Backend is the key/value store behind the cache
type Backend interface {
	IsEnabled() bool
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	GetInt64(ctx context.Context, key string) (int64, error)
	Incr(ctx context.Context, key string) (int64, error)
}

type Cache struct {
	backend Backend
	ttl     time.Duration
	logger  *observability.Logger
	group   singleflight.Group
}

func New(backend Backend, ttl time.Duration, logger *observability.Logger) *Cache {
	return &Cache{
		backend: backend,
		ttl:     ttl,
		logger:  logger,
	}
}

func (c *Cache) enabled() bool {
	return c != nil && c.backend != nil && c.backend.IsEnabled()
}

// Key derives the cache key for request in namespace at the current generation
func (c *Cache) Key(ctx context.Context, namespace string, request any) (string, error) {
	raw, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key: %w", err)
	}
	sum := sha256.Sum256(raw)

	generation, err := c.backend.GetInt64(ctx, generationKey)
	if err != nil {
		return "", fmt.Errorf("failed to read cache generation: %w", err)
	}
	return fmt.Sprintf("hunt:cache:%s:g%d:%s", namespace, generation, hex.EncodeToString(sum[:])), nil
}

// InvalidateAll makes every existing entry unreachable
func (c *Cache) InvalidateAll(ctx context.Context) error {
	if !c.enabled() {
		return nil
	}
	if _, err := c.backend.Incr(ctx, generationKey); err != nil {
		return fmt.Errorf("failed to bump cache generation: %w", err)
	}
	return nil
}

// Fetch returns the cached value for request, calling load on a miss. Concurrent
// misses for the same key share one load. Cache failures fall through to load.
func Fetch[T any](ctx context.Context, c *Cache, namespace string, request any, load func(ctx context.Context) (T, error)) (T, error) {
	if !c.enabled() {
		return load(ctx)
	}

	key, err := c.Key(ctx, namespace, request)
	if err != nil {
		c.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: err.Error()}), "cache unavailable, loading from source")
		return load(ctx)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "cache_key", Value: key})

	if raw, err := c.backend.Get(ctx, key); err == nil {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		c.logger.Warn(ctx, "discarding undecodable cache entry")
	} else if !errors.Is(err, redis.ErrMiss) {
		c.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: err.Error()}), "cache read failed")
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		value, err := load(ctx)
		if err != nil {
			return value, err
		}
		raw, err := json.Marshal(value)
		if err != nil {
			c.logger.Warn(ctx, "cache value is not encodable, skipping store")
			return value, nil
		}
		if err := c.backend.Set(ctx, key, raw, c.ttl); err != nil {
			c.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: err.Error()}), "cache write failed")
		}
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
