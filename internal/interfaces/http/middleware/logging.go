package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hys-retail/storedesk/internal/shared/logger"
)

// RequestLogger logs every request once it completes. Client errors log at
// warn and server errors at error.
func RequestLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}

		if requestID := c.GetHeader("X-Request-ID"); requestID != "" {
			args = append(args, "request_id", requestID)
		}

		if p, ok := GetPrincipal(c); ok {
			args = append(args, "principal", string(p.Kind()))
			if p.IsStore() {
				args = append(args, "store_id", p.StoreID())
			}
		}

		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP request completed with server error", args...)
		case status >= 400:
			log.Warnw("HTTP request completed with client error", args...)
		default:
			log.Debugw("HTTP request completed successfully", args...)
		}
	}
}
