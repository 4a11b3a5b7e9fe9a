//go:build unit

package middleware_test

import (
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"cinema-booking/internal/domain/seatmap"
	"cinema-booking/internal/handler/httperr"
	"cinema-booking/internal/handler/middleware"
	"cinema-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail struct {
		Seats []string `json:"seats"`
	} `json:"detail"`
}

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	r.GET("/conflict", func(c *gin.Context) {
		err := errs.Mark(&seatmap.ConflictError{Codes: []string{"R1-2", "R2-1"}}, errs.ErrSeatConflict)
		_ = c.Error(err)
	})
	r.GET("/invalid", func(c *gin.Context) {
		err := errs.Mark(&seatmap.InvalidSelectionError{Reason: seatmap.ReasonUnknown, Codes: []string{"R9-9"}}, errs.ErrInvalidRequest)
		_ = c.Error(err)
	})
	r.GET("/missing", func(c *gin.Context) {
		_ = c.Error(errs.Mark(errs.New("no such showtime"), errs.ErrShowtimeNotFound))
	})
	r.GET("/public", func(c *gin.Context) {
		_ = c.Error(&gin.Error{
			Err:  errs.New("slow down"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.FromError(errs.Mark(errs.New("gone"), errs.ErrBookingNotFound)),
		})
	})
	r.GET("/written", func(c *gin.Context) {
		httperr.AbortWithServiceError(c, errs.Mark(errs.New("no such booking"), errs.ErrBookingNotFound))
	})
	r.GET("/silent", func(c *gin.Context) {})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func performGet(t *testing.T, r *gin.Engine, path string) (*nethttptest.ResponseRecorder, errorBody) {
	t.Helper()
	req := nethttptest.NewRequest(http.MethodGet, path, nil)
	rec := nethttptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec, body
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()

	tests := []struct {
		name      string
		path      string
		wantCode  int
		wantMsg   string
		wantSeats []string
	}{
		{name: "seat conflict lists taken seats", path: "/conflict", wantCode: http.StatusConflict, wantMsg: "Some seats are already taken", wantSeats: []string{"R1-2", "R2-1"}},
		{name: "unknown seats are listed", path: "/invalid", wantCode: http.StatusBadRequest, wantMsg: "Invalid booking request", wantSeats: []string{"R9-9"}},
		{name: "missing showtime", path: "/missing", wantCode: http.StatusNotFound, wantMsg: "Showtime not found"},
		{name: "public error renders its meta", path: "/public", wantCode: http.StatusNotFound, wantMsg: "Booking not found"},
		{name: "written response is left alone", path: "/written", wantCode: http.StatusNotFound, wantMsg: "Booking not found"},
		{name: "handler without response", path: "/silent", wantCode: http.StatusInternalServerError, wantMsg: "Internal error"},
		{name: "panic is recovered", path: "/panic", wantCode: http.StatusInternalServerError, wantMsg: "Internal error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := performGet(t, r, tc.path)
			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Equal(t, tc.wantMsg, body.Error.Message)
			assert.Equal(t, tc.wantSeats, body.Detail.Seats)
		})
	}
}
