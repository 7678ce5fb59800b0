package middleware

import (
	"time"

	"petwork_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger records each completed request with its request ID and
// user ID when known.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.CtxInfo(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"size_bytes", c.Writer.Size(),
		)
	}
}
