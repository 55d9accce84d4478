package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hituru_admin_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"section", "method", "path", "status"},
	)

	adminMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hituru_admin_mutations_total",
			Help: "Admin POST actions by section and outcome (ok, rejected, failed)",
		},
		[]string{"section", "outcome"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hituru_admin_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"section", "method"},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hituru_admin_http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 6), // 100B to 10MB
		},
		[]string{"section"},
	)

	activeRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hituru_admin_http_active_requests",
			Help: "Number of currently active HTTP requests",
		},
	)

	dbConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hituru_admin_db_connections_active",
			Help: "Number of active database connections",
		},
	)
)

// Metrics returns a gin middleware that collects Prometheus metrics
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip metrics endpoint itself
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		activeRequests.Inc()

		c.Next()

		activeRequests.Dec()
		duration := time.Since(start).Seconds()
		status := c.Writer.Status()
		path := normalizePath(c.FullPath())
		section := sectionOf(path)

		httpRequestsTotal.WithLabelValues(section, c.Request.Method, path, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(section, c.Request.Method).Observe(duration)
		httpResponseSize.WithLabelValues(section).Observe(float64(c.Writer.Size()))
		if c.Request.Method == http.MethodPost && path != "unmatched" {
			adminMutationsTotal.WithLabelValues(section, mutationOutcome(status)).Inc()
		}
	}
}

// sectionOf maps a route template to its admin menu: /reports/board/:page -> reports
func sectionOf(route string) string {
	if route == "unmatched" {
		return route
	}
	first := strings.TrimPrefix(route, "/")
	if i := strings.IndexByte(first, '/'); i >= 0 {
		first = first[:i]
	}
	switch first {
	case "users":
		return "members"
	case "visitors":
		return "analysis"
	case "":
		return "root"
	}
	return first
}

func mutationOutcome(status int) string {
	switch {
	case status >= 500:
		return "failed"
	case status >= 400:
		return "rejected"
	}
	return "ok"
}

// SetDBConnectionsActive updates the DB connection gauge (call from main)
func SetDBConnectionsActive(count float64) {
	dbConnectionsActive.Set(count)
}

// normalizePath returns the route template (e.g. /members/detail/:id).
// Unrouted paths share one label so scanners cannot inflate cardinality.
func normalizePath(route string) string {
	if route == "" {
		return "unmatched"
	}
	return route
}
