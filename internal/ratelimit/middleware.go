package ratelimit

import (
	"fmt"
	"net/http"

	authHandler "hunt-server/internal/auth/handler"
	"hunt-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CodeRateLimitExceeded is returned with 429 responses
const CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"

// Middleware creates a Gin middleware for rate limiting. It must run after the JWT
// middleware; requests without an authenticated user pass through. A failing
// window store lets the request through.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		userID, err := uuid.Parse(c.GetString(authHandler.ContextUserID))
		if err != nil {
			c.Next()
			return
		}

		result, err := s.CheckRateLimit(ctx, userID)
		if err != nil {
			s.logger.Error(ctx, "rate limit check failed", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", result.RetryAfterMs/1000))
			s.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "limit", Value: result.Limit},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			), "rate limit exceeded")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"code":        CodeRateLimitExceeded,
				"limit":       result.Limit,
				"retry_after": result.RetryAfterMs / 1000,
				"reset_at":    result.ResetAt.Unix(),
			})
			return
		}

		c.Next()
	}
}
