package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mahatoankit/flightbook/internal/auth"
	"github.com/mahatoankit/flightbook/internal/logging"
	"github.com/mahatoankit/flightbook/internal/metrics"
)

// Metrics records per-request counters and latency and logs the completed
// request.
func Metrics(m *metrics.MetricsRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}
		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		m.HTTPRequestsTotal.WithLabelValues(endpoint, c.Request.Method, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(endpoint, c.Request.Method).Observe(duration)

		logging.Info("http request completed",
			"method", c.Request.Method,
			"endpoint", endpoint,
			"status_code", status,
			"duration_ms", int(duration*1000),
		)
	}
}

// RequireAdmin guards administrative routes with a bearer session token issued
// by the auth service.
func RequireAdmin(sessions *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionFromRequest(c, sessions)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or expired session token"})
			return
		}
		if !session.Admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin session required"})
			return
		}
		c.Next()
	}
}

func sessionFromRequest(c *gin.Context, sessions *auth.Service) (*auth.Session, bool) {
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, false
	}
	return sessions.SessionByToken(token)
}
