package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.POST("/users/ban/:memId", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return r
}

func do(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "10.0.0.1:5555"
	r.ServeHTTP(w, req)
	return w
}

func TestLocalRateLimit(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	cfg := DefaultRateLimitConfig()
	cfg.RequestsPerMinute = 3
	r := newEngine(localRateLimit(cfg, clock))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do(r, "GET", "/ping").Code)
	}
	w := do(r, "GET", "/ping")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")

	// one token refills every 20s
	now = now.Add(21 * time.Second)
	assert.Equal(t, http.StatusOK, do(r, "GET", "/ping").Code)
}

func TestRateLimit_NilRedisFallsBackToLocal(t *testing.T) {
	cfg := DefaultRateLimitConfig()
	cfg.RequestsPerMinute = 1
	r := newEngine(RateLimit(nil, cfg))

	assert.Equal(t, http.StatusOK, do(r, "GET", "/ping").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, "GET", "/ping").Code)
}

func TestLocalLimiters_SweepIdle(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := &localLimiters{
		now:       func() time.Time { return now },
		limiters:  map[string]*ipLimiter{},
		lastSweep: now,
		limit:     1,
		burst:     1,
	}
	l.get("a")
	now = now.Add(idleLimiterTTL + time.Second)
	l.get("b")

	assert.NotContains(t, l.limiters, "a")
	assert.Contains(t, l.limiters, "b")
}

func TestRequestLogger_RequestID(t *testing.T) {
	r := newEngine(RequestLogger())

	w := do(r, "GET", "/ping")
	assert.Len(t, w.Header().Get("X-Request-ID"), 8)

	w = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "given-id")
	r.ServeHTTP(w, req)
	assert.Equal(t, "given-id", w.Header().Get("X-Request-ID"))
}

func TestSecurityHeaders(t *testing.T) {
	w := do(newEngine(SecurityHeaders()), "GET", "/ping")

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "unmatched", normalizePath(""))
	assert.Equal(t, "/members/:page", normalizePath("/members/:page"))
}

func TestSectionOf(t *testing.T) {
	tests := map[string]string{
		"/members/:page":                           "members",
		"/users/ban/:memId":                        "members",
		"/reports/board/search/:field/:term/:page": "reports",
		"/memberqna/answer/post/:id":               "memberqna",
		"/visitors/daily":                          "analysis",
		"/health":                                  "health",
		"unmatched":                                "unmatched",
		"/":                                        "root",
	}
	for route, want := range tests {
		assert.Equal(t, want, sectionOf(route), route)
	}
}

func TestMetrics_CountsMutationsBySection(t *testing.T) {
	r := newEngine(Metrics())
	r.POST("/users/unban/:memId", func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"ok": false}) })
	ok := testutil.ToFloat64(adminMutationsTotal.WithLabelValues("members", "ok"))
	rejected := testutil.ToFloat64(adminMutationsTotal.WithLabelValues("members", "rejected"))

	do(r, "POST", "/users/ban/1")
	do(r, "POST", "/users/unban/1")
	do(r, "GET", "/ping")

	assert.Equal(t, ok+1, testutil.ToFloat64(adminMutationsTotal.WithLabelValues("members", "ok")))
	assert.Equal(t, rejected+1, testutil.ToFloat64(adminMutationsTotal.WithLabelValues("members", "rejected")))
}

func TestMetricsAndAudit_PassThrough(t *testing.T) {
	r := newEngine(Metrics(), Audit())

	assert.Equal(t, http.StatusOK, do(r, "POST", "/users/ban/1").Code)
	assert.Equal(t, http.StatusNotFound, do(r, "GET", "/nope").Code)
}
