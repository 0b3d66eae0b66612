package server

import (
	"strconv"
	"time"

	"carpet-auction-house/internal/metrics"
	"carpet-auction-house/utils"

	"github.com/gin-gonic/gin"
)

var requestDuration = metrics.NewHistogram("request_duration_seconds", "http",
	"Latency of API requests by route and status.", []string{"method", "route", "status"})

// RequestIDMiddleware propagates a valid X-Request-ID or issues a fresh one
func RequestIDMiddleware(c *gin.Context) {
	id := utils.RequestID(c.GetHeader(utils.RequestIDHeader))
	c.Set(utils.RequestIDKey, id)
	c.Header(utils.RequestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	latency := time.Since(start)
	requestDuration.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Observe(latency.Seconds())

	utils.Info("HTTP Request", map[string]any{
		"request_id": c.GetString(utils.RequestIDKey),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    latency.String(),
	})
}
