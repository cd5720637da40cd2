package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/hys-retail/storedesk/internal/infrastructure/metrics"
	"github.com/hys-retail/storedesk/internal/infrastructure/ratelimit"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
	"github.com/hys-retail/storedesk/internal/shared/utils"
)

// RateLimiter limits requests per client IP.
type RateLimiter struct {
	limiter ratelimit.Limiter
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.Limiter, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit returns a Gin middleware that enforces the limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		allowed, err := rl.limiter.Allow(c.Request.Context(), clientIP)
		if err != nil {
			// If the counter store is unavailable, allow the request to avoid blocking all logins
			rl.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			rl.logger.Warnw("login rate limit exceeded", "client_ip", clientIP, "path", c.Request.URL.Path)
			metrics.LoginRateLimited.Inc()
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError(clientIP))
			c.Abort()
			return
		}

		c.Next()
	}
}
