// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	domainerror "github.com/apptask/backend/internal/domain/error"
)

// RateLimitStore counts requests per key.
type RateLimitStore interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimiter provides IP-based rate limiting functionality.
type RateLimiter struct {
	store   RateLimitStore
	enabled bool
	logger  *slog.Logger
}

// NewRateLimiter creates a new rate limiter backed by store.
func NewRateLimiter(store RateLimitStore, enabled bool, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		store:   store,
		enabled: enabled,
		logger:  logger,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
// Store failures let the request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled {
			c.Next()
			return
		}

		// Get client IP
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, err := rl.store.Allow(c.Request.Context(), clientIP)
		if err != nil {
			rl.logger.WarnContext(c.Request.Context(), "Rate limit store unavailable",
				"error", err,
				"request_id", RequestIDFrom(c),
			)
			c.Next()
			return
		}

		if !allowed {
			_ = c.Error(domainerror.NewTooManyRequestsError())
			c.Abort()
			return
		}

		c.Next()
	}
}
