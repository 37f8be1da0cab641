package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prefeitura-rio/app-address/internal/observability"
	"github.com/prefeitura-rio/app-address/internal/utils"
	"go.uber.org/zap"
)

// CorrelationIDHeader is the header carrying the request's tracking token
const CorrelationIDHeader = "X-Correlation-ID"

// CorrelationIDKey is the gin context key for the correlation ID
const CorrelationIDKey = "CorrelationID"

// CorrelationID propagates the caller's correlation ID, generating one when
// the header is absent, and echoes it on the response
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = generateCorrelationID()
		}
		c.Set(CorrelationIDKey, correlationID)
		c.Header(CorrelationIDHeader, correlationID)
		c.Next()
	}
}

// RequestLogger logs request information
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		observability.Logger().Info("request completed",
			zap.String("correlation_id", c.GetString(CorrelationIDKey)),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.String("method", c.Request.Method),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("user_agent", c.Request.UserAgent()),
		)

		observability.RequestDuration.WithLabelValues(
			path,
			c.Request.Method,
			statusLabel(status),
		).Observe(latency.Seconds())
	}
}

// RequestTracker tracks active connections
func RequestTracker() gin.HandlerFunc {
	return func(c *gin.Context) {
		observability.ActiveConnections.Inc()
		defer observability.ActiveConnections.Dec()
		c.Next()
	}
}

// generateCorrelationID generates a fresh correlation ID
func generateCorrelationID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return utils.GenerateUUID()
	}
	return id.String()
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
