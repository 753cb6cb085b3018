package ratelimit

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=ratelimit

import (
	"context"
	"fmt"
	"time"

	"hunt-server/internal/observability"

	"github.com/google/uuid"
)

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// WindowStore keeps one sorted set of request timestamps per caller
type WindowStore interface {
	IsEnabled() bool
	WindowCount(ctx context.Context, key string, since int64) (int64, int64, error)
	AddHit(ctx context.Context, key, member string, score int64, ttl time.Duration) error
}

// Service limits how many API requests a user can make per minute
type Service struct {
	window WindowStore
	limit  int
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a rate limiting service. A limit of zero or less disables it.
func NewService(window WindowStore, requestsPerMinute int, logger *observability.Logger) *Service {
	return &Service{
		window: window,
		limit:  requestsPerMinute,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Service) enabled() bool {
	return s.limit > 0 && s.window != nil && s.window.IsEnabled()
}

// CheckRateLimit records a request for the user and reports whether it is within the limit.
// Uses a one-minute sliding window over request timestamps.
func (s *Service) CheckRateLimit(ctx context.Context, userID uuid.UUID) (RateLimitResult, error) {
	now := s.now()
	if !s.enabled() {
		return RateLimitResult{Allowed: true, Limit: s.limit, Remaining: s.limit, ResetAt: now.Add(time.Minute)}, nil
	}

	key := fmt.Sprintf("hunt:rl:%s", userID.String())
	nowMs := now.UnixMilli()
	windowStartMs := now.Add(-time.Minute).UnixMilli()

	count, oldestMs, err := s.window.WindowCount(ctx, key, windowStartMs)
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= s.limit {
		resetAt := now.Add(time.Minute)
		if oldestMs > 0 {
			resetAt = time.UnixMilli(oldestMs).Add(time.Minute)
		}
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return RateLimitResult{
			Allowed:      false,
			Limit:        s.limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	// 2 minutes so a key outlives its window
	if err := s.window.AddHit(ctx, key, uuid.NewString(), nowMs, 2*time.Minute); err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to add request: %w", err)
	}

	return RateLimitResult{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(time.Minute),
	}, nil
}
