package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/hituru/admin-backend/pkg/logger"
)

// RateLimitConfig configures the rate limiter
type RateLimitConfig struct {
	KeyPrefix         string
	Message           string
	RequestsPerMinute int
}

// DefaultRateLimitConfig returns default rate limit configuration
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerMinute: 300,
		KeyPrefix:         "hituru:admin:ratelimit:",
		Message:           "요청이 너무 많습니다. 잠시 후 다시 시도해주세요.",
	}
}

// rateLimitScript is an atomic Lua script for sliding window rate limiting
var rateLimitScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local window_start = now - window

redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)
local count = redis.call('ZCARD', key)

if count < limit then
    redis.call('ZADD', key, now, now .. ':' .. math.random(1000000))
    redis.call('EXPIRE', key, math.ceil(window / 1000) + 1)
    return {1, limit - count - 1, 0}
else
    local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
    local reset_at = 0
    if #oldest >= 2 then
        reset_at = tonumber(oldest[2]) + window
    end
    return {0, 0, reset_at}
end
`)

// RateLimit returns a gin middleware that rate limits by client IP.
// With Redis the window is shared by every instance; without it each instance keeps
// an in-process token bucket per IP. Redis errors fail open.
func RateLimit(redisClient *redis.Client, cfg RateLimitConfig) gin.HandlerFunc {
	if redisClient == nil {
		return localRateLimit(cfg, time.Now)
	}

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		key := cfg.KeyPrefix + clientIP

		now := time.Now().UnixMilli()
		windowMs := int64(60 * 1000) // 1 minute

		result, err := rateLimitScript.Run(c.Request.Context(), redisClient, []string{key},
			cfg.RequestsPerMinute, windowMs, now,
		).Int64Slice()

		if err != nil {
			logger.GetLogger().Warn().Err(err).Msg("rate limit script failed, allowing request")
			c.Next()
			return
		}

		allowed := result[0] == 1
		remaining := result[1]
		resetAt := result[2]

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerMinute))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if !allowed {
			retryAfter := (resetAt - now) / 1000
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", resetAt/1000))
			tooManyRequests(c, cfg, retryAfter)
			return
		}

		c.Next()
	}
}

func tooManyRequests(c *gin.Context, cfg RateLimitConfig, retryAfter int64) {
	c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error": gin.H{"code": "RATE_LIMITED", "message": cfg.Message},
	})
}

// idleLimiterTTL drops per-IP buckets that have not been used for this long
const idleLimiterTTL = 10 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type localLimiters struct {
	now       func() time.Time
	limiters  map[string]*ipLimiter
	lastSweep time.Time
	limit     rate.Limit
	burst     int
	mu        sync.Mutex
}

func (l *localLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > idleLimiterTTL {
		for k, v := range l.limiters {
			if now.Sub(v.lastSeen) > idleLimiterTTL {
				delete(l.limiters, k)
			}
		}
		l.lastSweep = now
	}

	entry, ok := l.limiters[ip]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

func localRateLimit(cfg RateLimitConfig, now func() time.Time) gin.HandlerFunc {
	perMinute := cfg.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = DefaultRateLimitConfig().RequestsPerMinute
	}
	limiters := &localLimiters{
		now:       now,
		limiters:  make(map[string]*ipLimiter),
		lastSweep: now(),
		limit:     rate.Limit(float64(perMinute) / 60),
		burst:     perMinute,
	}

	return func(c *gin.Context) {
		lim := limiters.get(c.ClientIP())
		c.Header("X-RateLimit-Limit", strconv.Itoa(perMinute))

		r := lim.ReserveN(limiters.now(), 1)
		if delay := r.DelayFrom(limiters.now()); delay > 0 {
			r.CancelAt(limiters.now())
			retryAfter := int64(delay / time.Second)
			if retryAfter < 1 {
				retryAfter = 1
			}
			tooManyRequests(c, cfg, retryAfter)
			return
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(lim.TokensAt(limiters.now()))))
		c.Next()
	}
}
