package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware for metrics collection
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		// Process request
		c.Next()

		// Concrete request path, query string excluded
		endpoint := c.Request.URL.Path

		status := strconv.Itoa(c.Writer.Status())
		metrics.RecordHTTPRequest(method, endpoint, status, time.Since(start))
	}
}
