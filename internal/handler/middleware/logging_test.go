//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"cinema-booking/internal/handler/middleware"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggingRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := gin.New()
	r.Use(middleware.LoggingMiddleware(logger, config.NewTestConfig().Log))
	r.POST("/api/bookings", func(c *gin.Context) {
		c.Header("Location", "/api/bookings/BK-000001")
		c.Status(http.StatusCreated)
	})
	r.GET("/api/bookings/:id", func(c *gin.Context) {
		_ = c.Error(errs.Wrap(errs.New("store offline"), "find booking"))
		c.AbortWithStatus(http.StatusInternalServerError)
	})
	r.GET("/api/showtimes/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"requestId": middleware.GetRequestID(c)})
	})
	return r
}

// completedLine returns the "Request completed" record of a single request.
func completedLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		if rec["msg"] == "Request completed" {
			return rec
		}
	}
	t.Fatalf("no completion line in %q", buf.String())
	return nil
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("incoming request id is kept and exposed to handlers", func(t *testing.T) {
		var buf bytes.Buffer
		req := nethttptest.NewRequest(http.MethodGet, "/api/showtimes/s1", nil)
		req.Header.Set("X-Request-ID", "edge-42")
		rec := nethttptest.NewRecorder()
		loggingRouter(&buf).ServeHTTP(rec, req)

		assert.Equal(t, "edge-42", rec.Header().Get("X-Request-ID"))
		assert.JSONEq(t, `{"requestId":"edge-42"}`, rec.Body.String())

		line := completedLine(t, &buf)
		assert.Equal(t, "edge-42", line["request_id"])
		assert.Equal(t, "s1", line["showtime_id"])
		assert.Equal(t, "INFO", line["level"])
	})

	t.Run("missing request id is generated", func(t *testing.T) {
		var buf bytes.Buffer
		req := nethttptest.NewRequest(http.MethodGet, "/api/showtimes/s2", nil)
		rec := nethttptest.NewRecorder()
		loggingRouter(&buf).ServeHTTP(rec, req)

		_, err := uuid.Parse(rec.Header().Get("X-Request-ID"))
		assert.NoError(t, err)
	})

	t.Run("created booking logs its location", func(t *testing.T) {
		var buf bytes.Buffer
		req := nethttptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		rec := nethttptest.NewRecorder()
		loggingRouter(&buf).ServeHTTP(rec, req)

		line := completedLine(t, &buf)
		assert.Equal(t, float64(http.StatusCreated), line["status_code"])
		assert.Equal(t, "/api/bookings/BK-000001", line["location"])
		assert.NotContains(t, line, "error")
	})

	t.Run("server error logs the error with its stack", func(t *testing.T) {
		var buf bytes.Buffer
		req := nethttptest.NewRequest(http.MethodGet, "/api/bookings/BK-000009", nil)
		rec := nethttptest.NewRecorder()
		loggingRouter(&buf).ServeHTTP(rec, req)

		line := completedLine(t, &buf)
		assert.Equal(t, "ERROR", line["level"])
		assert.Equal(t, "BK-000009", line["booking_id"])
		assert.Equal(t, "find booking: store offline", line["error"])

		stack, ok := line["stack"].([]any)
		require.True(t, ok, "stack should be a list of lines")
		assert.NotEmpty(t, stack)
		assert.LessOrEqual(t, len(stack), 12)
	})
}
