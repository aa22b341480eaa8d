package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key carrying the request id.
const RequestIDKey = "request_id"

// RequestLogger logs every request with method, path, status, latency and
// client IP, attaching a request id for correlation.
func (m Middleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		m.l.Infof(c.Request.Context(), "%s %s -> %d (%s) id=%s ip=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			time.Since(start), requestID, c.ClientIP())
	}
}
