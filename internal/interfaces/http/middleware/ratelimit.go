package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusfix/internal/infrastructure/ratelimit"
	"campusfix/internal/shared/logger"
	"campusfix/internal/shared/utils"
)

// RateLimit limits requests per client IP. The denial message is fixed and
// never echoes how long remains in the window. When the limiter backend is
// unavailable the request goes through; the guarded endpoints must not depend
// on redis being up.
func RateLimit(limiter ratelimit.RateLimiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"error", err,
				"client_ip", c.ClientIP())
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests,
				"too many attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
