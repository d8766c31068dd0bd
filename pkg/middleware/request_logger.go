package middleware

import (
	"strconv"
	"time"

	"github.com/flyambition/flyambition-api/pkg/logger"
	"github.com/flyambition/flyambition-api/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID propagates an inbound X-Request-ID or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger records one log line and the HTTP metrics per request.
// Errors attached with c.Error are included so handlers can keep client
// responses generic while the detail stays server-side.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// route template keeps label cardinality bounded
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)
		method := c.Request.Method

		metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())

		id := c.GetString(RequestIDKey)
		switch {
		case status >= 500:
			logger.Errorf("%s %s -> %d (%s) id=%s ip=%s err=%q", method, c.Request.URL.Path, status, elapsed, id, c.ClientIP(), c.Errors.String())
		case status >= 400:
			logger.Warnf("%s %s -> %d (%s) id=%s ip=%s err=%q", method, c.Request.URL.Path, status, elapsed, id, c.ClientIP(), c.Errors.String())
		default:
			logger.Infof("%s %s -> %d (%s) id=%s", method, c.Request.URL.Path, status, elapsed, id)
		}
	}
}
