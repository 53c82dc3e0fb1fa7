package middleware

import (
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	ports "pinstack-tag-service/internal/domain/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger tags every request with an id, records request metrics and
// tracks the number of in-flight requests.
func RequestLogger(log ports.Logger, metrics ports.MetricsProvider) gin.HandlerFunc {
	var active int64
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		metrics.SetActiveConnections(int(atomic.AddInt64(&active, 1)))
		defer func() {
			metrics.SetActiveConnections(int(atomic.AddInt64(&active, -1)))
		}()

		c.Next()

		// Unmatched routes have no template, fall back to the raw path.
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start)

		metrics.IncrementHTTPRequests(c.Request.Method, path, status)
		metrics.RecordHTTPRequestDuration(c.Request.Method, path, status, duration)

		log.Debug("Handled HTTP request",
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("status", status),
			slog.Duration("duration", duration))
	}
}
