package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/userhub/user-service/internal/logger"
)

// Logging logs method, path, status and duration for each request.
func Logging(logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)

		logger.Info("http request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", duration.Milliseconds(),
			"request_id", c.GetString(requestIDKey))

		for _, err := range c.Errors {
			logger.Error("http request failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err.Error())
		}
	}
}
