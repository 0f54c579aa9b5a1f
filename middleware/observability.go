package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"travelcms/services/metrics"
)

func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}

// Metrics records request counts and latency per route pattern
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveHTTP(routeOf(c), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}

// Logger writes one structured line per request
func Logger(l zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ev := l.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			ev = l.Error()
		}
		ev.Str("route", routeOf(c)).
			Str("method", c.Request.Method).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("remote", remoteIP(c.Request)).
			Str("ua", c.Request.UserAgent()).
			Str("request_id", c.GetString(RequestIDKey)).
			Msg("http_request")
	}
}

// Picks first X-Forwarded-For IP, else X-Real-IP, else RemoteAddr host.
func remoteIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
