package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"hunt-server/internal/config"
	"hunt-server/internal/observability"

	"github.com/redis/go-redis/v9"
)

var (
	ErrNotInitialized = errors.New("redis client not initialized")
	// ErrMiss is returned when a key or member does not exist.
	ErrMiss = errors.New("redis: miss")
)

// Client wraps the Redis client with observability. A nil *Client is valid and
// reports IsEnabled() == false.
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client, or returns nil when Redis is disabled
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "addr", Value: cfg.Addr()},
		observability.Field{Key: "db", Value: cfg.DB},
	)
	logger.Info(ctx, "successfully connected to redis")

	return NewFromClient(client, logger), nil
}

// NewFromClient wraps an existing go-redis client
func NewFromClient(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// IsEnabled returns whether Redis is enabled
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if !c.IsEnabled() {
		return nil
	}
	return c.client.Close()
}

// Ping checks the Redis connection
func (c *Client) Ping(ctx context.Context) error {
	if !c.IsEnabled() {
		return ErrNotInitialized
	}
	return c.client.Ping(ctx).Err()
}

// Get returns the value stored at key
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if !c.IsEnabled() {
		return nil, ErrNotInitialized
	}
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return val, err
}

// Set stores value at key with a TTL
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !c.IsEnabled() {
		return ErrNotInitialized
	}
	return c.client.Set(ctx, key, value, ttl).Err()
}

// GetInt64 returns the integer stored at key, or 0 when it is absent
func (c *Client) GetInt64(ctx context.Context, key string) (int64, error) {
	if !c.IsEnabled() {
		return 0, ErrNotInitialized
	}
	val, err := c.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return val, err
}

// Incr increments the counter at key
func (c *Client) Incr(ctx context.Context, key string) (int64, error) {
	if !c.IsEnabled() {
		return 0, ErrNotInitialized
	}
	return c.client.Incr(ctx, key).Result()
}

// ReplaceSortedSet atomically swaps the sorted set at key for members. The new set
// is built under a staging key and renamed over the old one in a MULTI block.
func (c *Client) ReplaceSortedSet(ctx context.Context, key string, members []redis.Z) error {
	if !c.IsEnabled() {
		return ErrNotInitialized
	}
	if len(members) == 0 {
		return c.client.Del(ctx, key).Err()
	}

	staging := key + ":staging"
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, staging)
		pipe.ZAdd(ctx, staging, members...)
		pipe.Rename(ctx, staging, key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace sorted set: %w", err)
	}
	return nil
}

// ZRange returns members in a sorted set by index range (ascending)
func (c *Client) ZRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	if !c.IsEnabled() {
		return nil, ErrNotInitialized
	}
	return c.client.ZRange(ctx, key, start, stop).Result()
}

// ZCard returns the number of members in a sorted set
func (c *Client) ZCard(ctx context.Context, key string) (int64, error) {
	if !c.IsEnabled() {
		return 0, ErrNotInitialized
	}
	return c.client.ZCard(ctx, key).Result()
}

// WindowCount drops members scored at or before since and returns how many remain
// together with the lowest remaining score (0 when the set is empty).
func (c *Client) WindowCount(ctx context.Context, key string, since int64) (int64, int64, error) {
	if !c.IsEnabled() {
		return 0, 0, ErrNotInitialized
	}

	var (
		card   *redis.IntCmd
		oldest *redis.ZSliceCmd
	)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(since, 10))
		card = pipe.ZCard(ctx, key)
		oldest = pipe.ZRangeWithScores(ctx, key, 0, 0)
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count window: %w", err)
	}

	var lowest int64
	if members := oldest.Val(); len(members) > 0 {
		lowest = int64(members[0].Score)
	}
	return card.Val(), lowest, nil
}

// AddHit records member at score and refreshes the key's TTL
func (c *Client) AddHit(ctx context.Context, key, member string, score int64, ttl time.Duration) error {
	if !c.IsEnabled() {
		return ErrNotInitialized
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(score), Member: member})
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record hit: %w", err)
	}
	return nil
}
