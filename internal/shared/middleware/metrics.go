package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/pkg/metrics"
)

// Metrics ghi latency theo route pattern (không theo path thật để tránh label cardinality)
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
