package middleware

import (
	"time"

	"heartdash/internal"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request. Server errors go out at ERROR,
// everything else at DEBUG.
func RequestLogger(logger *internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start).Round(time.Microsecond)
		if status >= 500 {
			logger.Error("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.RequestURI(), status, latency)
			return
		}
		logger.Debug("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.RequestURI(), status, latency)
	}
}
