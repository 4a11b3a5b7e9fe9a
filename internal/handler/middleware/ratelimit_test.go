//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"cinema-booking/internal/handler/middleware"
	"cinema-booking/internal/pkg/clock"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScripter answers the token bucket script with canned {allowed, remaining, retry_ms} triples.
type fakeScripter struct {
	redis.Scripter
	results [][]any
	err     error
	keys    []string
	args    [][]any
}

func (f *fakeScripter) EvalSha(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	cmd := redis.NewCmd(ctx)
	f.keys = append(f.keys, keys...)
	f.args = append(f.args, args)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	cmd.SetVal(f.results[0])
	f.results = f.results[1:]
	return cmd
}

func limiterConfig(enabled bool) config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        enabled,
		Capacity:       10,
		RefillTokens:   1,
		RefillInterval: 6 * time.Second,
		TTL:            10 * time.Minute,
		Prefix:         "rl:bookings",
	}
}

func newLimitedRouter(t *testing.T, enabled bool, rdb redis.Scripter) *gin.Engine {
	t.Helper()
	return newLimitedRouterWith(t, limiterConfig(enabled), rdb)
}

func newLimitedRouterWith(t *testing.T, rlCfg config.RateLimitConfig, rdb redis.Scripter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.RateLimit = rlCfg
	clk := clock.NewMockClock(time.UnixMilli(1_772_000_000_000))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rl := middleware.NewRateLimiter(cfg, rdb, clk, logger)
	router := gin.New()
	router.POST("/bookings", rl.Handler(), func(c *gin.Context) { c.Status(http.StatusCreated) })
	return router
}

func TestRateLimiter(t *testing.T) {
	t.Run("disabled limiter never calls redis", func(t *testing.T) {
		fake := &fakeScripter{}
		router := newLimitedRouter(t, false, fake)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/bookings", nil)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Empty(t, fake.keys)
	})

	t.Run("no redis client means passthrough", func(t *testing.T) {
		router := newLimitedRouter(t, true, nil)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/bookings", nil)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("allowed request carries quota headers", func(t *testing.T) {
		fake := &fakeScripter{results: [][]any{{int64(1), int64(9), int64(0)}}}
		router := newLimitedRouter(t, true, fake)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/bookings", nil)
		assert.Equal(t, http.StatusCreated, rec.Code)
		httptest.AssertHeaders(t, rec, map[string]string{
			"X-RateLimit-Limit":     "10",
			"X-RateLimit-Remaining": "9",
		})

		require.Len(t, fake.keys, 1)
		assert.Equal(t, "rl:bookings:ip:192.0.2.1:route:POST /bookings", fake.keys[0])
		require.Len(t, fake.args, 1)
		assert.Equal(t, []any{int64(1_772_000_000_000), 10, 1, int64(6000), int64(600)}, fake.args[0])
	})

	t.Run("empty bucket returns 429 with Retry-After", func(t *testing.T) {
		fake := &fakeScripter{results: [][]any{{int64(0), int64(0), int64(5500)}}}
		router := newLimitedRouter(t, true, fake)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/bookings", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many booking attempts")
		httptest.AssertHeaders(t, rec, map[string]string{
			"Retry-After":           "6",
			"X-RateLimit-Remaining": "0",
		})
	})

	t.Run("redis failure lets the request through", func(t *testing.T) {
		fake := &fakeScripter{err: errors.New("connection refused")}
		router := newLimitedRouter(t, true, fake)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/bookings", nil)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("sub-second TTL still keeps the bucket for a second", func(t *testing.T) {
		for _, ttl := range []time.Duration{0, 500 * time.Millisecond, 1500 * time.Millisecond} {
			rlCfg := limiterConfig(true)
			rlCfg.TTL = ttl
			fake := &fakeScripter{results: [][]any{{int64(1), int64(9), int64(0)}}}
			router := newLimitedRouterWith(t, rlCfg, fake)

			rec := httptest.PerformRequest(t, router, http.MethodPost, "/bookings", nil)
			require.Equal(t, http.StatusCreated, rec.Code)
			require.Len(t, fake.args, 1)

			want := int64(1)
			if ttl > time.Second {
				want = 2
			}
			assert.Equal(t, want, fake.args[0][4], "ttl %s", ttl)
		}
	})
}
