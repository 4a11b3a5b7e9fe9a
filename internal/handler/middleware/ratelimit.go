package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"cinema-booking/internal/handler/httperr"
	"cinema-booking/internal/pkg/clock"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills and takes one token atomically.
// Returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
  tokens = capacity
  last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
  local elapsed = math.max(0, now_ms - last_refill)
  local intervals = math.floor(elapsed / interval_ms)
  if intervals > 0 then
    tokens = math.min(capacity, tokens + (intervals * refill_tokens))
    last_refill = last_refill + (intervals * interval_ms)
  end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
  allowed = 1
  tokens = tokens - 1
else
  retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

var errRateLimited = errs.New("rate limit exceeded")

type RateLimiter struct {
	cfg    config.RateLimitConfig
	rdb    redis.Scripter
	clock  clock.Clock
	logger *slog.Logger
}

// NewRateLimiter returns a per-client token bucket kept in Redis.
// A nil rdb or RATE_LIMIT_ENABLED=false turns the limiter into a passthrough.
func NewRateLimiter(cfg config.Config, rdb redis.Scripter, clk clock.Clock, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{cfg: cfg.RateLimit, rdb: rdb, clock: clk, logger: logger}
}

func (r *RateLimiter) Enabled() bool {
	return r.cfg.Enabled && r.rdb != nil
}

func (r *RateLimiter) Handler() gin.HandlerFunc {
	if !r.Enabled() {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := r.key(c)
		args := []any{
			r.clock.Now().UnixMilli(),
			r.cfg.Capacity,
			r.cfg.RefillTokens,
			r.cfg.RefillInterval.Milliseconds(),
			r.ttlSeconds(),
		}

		vals, err := tokenBucketScript.Run(c.Request.Context(), r.rdb, []string{key}, args...).Int64Slice()
		if err != nil || len(vals) != 3 {
			// fail open: bookings must not depend on Redis being up
			r.logger.Warn("rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		allowed, remaining, retryMs := vals[0] == 1, vals[1], vals[2]
		c.Header("X-RateLimit-Limit", strconv.Itoa(r.cfg.Capacity))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			secs := int(math.Ceil(float64(retryMs) / 1000.0))
			c.Header("Retry-After", strconv.Itoa(secs))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errs.Wrapf(errRateLimited, "key %s", key),
				"Too many booking attempts, try again later", gin.H{"retryAfter": secs})
			return
		}
		c.Next()
	}
}

// ttlSeconds rounds up; EXPIRE with 0 would delete the bucket it just wrote.
func (r *RateLimiter) ttlSeconds() int64 {
	secs := int64(math.Ceil(r.cfg.TTL.Seconds()))
	return max(secs, 1)
}

func (r *RateLimiter) key(c *gin.Context) string {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	return strings.Join([]string{r.cfg.Prefix, "ip", c.ClientIP(), "route", c.Request.Method + " " + route}, ":")
}
