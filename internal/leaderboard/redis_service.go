package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"

	"hunt-server/internal/clients/redis"
	"hunt-server/internal/observability"
	"hunt-server/internal/store"

	redisLib "github.com/redis/go-redis/v9"
)

// SortedSetClient is the subset of the Redis client the rank index uses
type SortedSetClient interface {
	IsEnabled() bool
	ReplaceSortedSet(ctx context.Context, key string, members []redisLib.Z) error
	ZRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	ZCard(ctx context.Context, key string) (int64, error)
}

// RedisRankIndex keeps each difficulty's snapshot in a Redis ZSET scored by
// rank, so a window read is a single ZRANGE.
type RedisRankIndex struct {
	redis  SortedSetClient
	logger *observability.Logger
}

// NewRedisRankIndex creates a new Redis-backed rank index
func NewRedisRankIndex(client SortedSetClient, logger *observability.Logger) *RedisRankIndex {
	return &RedisRankIndex{
		redis:  client,
		logger: logger,
	}
}

// buildKey creates the Redis key of a difficulty's standings
// Format: hunt:lb:{difficulty}
func (s *RedisRankIndex) buildKey(difficulty store.Difficulty) string {
	return fmt.Sprintf("hunt:lb:%s", difficulty)
}

// Replace swaps the indexed standings for entries
func (s *RedisRankIndex) Replace(ctx context.Context, difficulty store.Difficulty, entries []store.LeaderboardEntry) error {
	if !s.redis.IsEnabled() {
		return redis.ErrNotInitialized
	}

	members := make([]redisLib.Z, len(entries))
	for i, entry := range entries {
		raw, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to encode leaderboard entry: %w", err)
		}
		members[i] = redisLib.Z{
			Score:  float64(entry.Rank),
			Member: string(raw),
		}
	}

	if err := s.redis.ReplaceSortedSet(ctx, s.buildKey(difficulty), members); err != nil {
		s.logger.Error(ctx, "failed to replace leaderboard in Redis", err)
		return fmt.Errorf("failed to replace leaderboard: %w", err)
	}
	return nil
}

// Window returns the entries ranked fromRank..toRank inclusive (1-based)
func (s *RedisRankIndex) Window(ctx context.Context, difficulty store.Difficulty, fromRank, toRank int) ([]store.LeaderboardEntry, error) {
	if !s.redis.IsEnabled() {
		return nil, redis.ErrNotInitialized
	}

	// Ranks are dense, so rank r sits at index r-1.
	results, err := s.redis.ZRange(ctx, s.buildKey(difficulty), int64(fromRank-1), int64(toRank-1))
	if err != nil {
		s.logger.Error(ctx, "failed to get leaderboard window from Redis", err)
		return nil, fmt.Errorf("failed to get leaderboard window: %w", err)
	}

	entries := make([]store.LeaderboardEntry, len(results))
	for i, raw := range results {
		if err := json.Unmarshal([]byte(raw), &entries[i]); err != nil {
			return nil, fmt.Errorf("failed to decode leaderboard entry: %w", err)
		}
	}
	return entries, nil
}

// Count returns the number of indexed entries
func (s *RedisRankIndex) Count(ctx context.Context, difficulty store.Difficulty) (int, error) {
	if !s.redis.IsEnabled() {
		return 0, redis.ErrNotInitialized
	}

	count, err := s.redis.ZCard(ctx, s.buildKey(difficulty))
	if err != nil {
		s.logger.Error(ctx, "failed to get leaderboard size from Redis", err)
		return 0, fmt.Errorf("failed to get leaderboard size: %w", err)
	}
	return int(count), nil
}
