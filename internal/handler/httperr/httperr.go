package httperr

import (
	"net/http"

	"cinema-booking/internal/domain/seatmap"
	"cinema-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// SeatsDetail names the seats an error is about, so the client can redraw only those.
type SeatsDetail struct {
	Seats []string `json:"seats"`
}

func newResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// FromError maps use case errors to the response a client sees. Anything unrecognized is a 500.
func FromError(err error) Response {
	switch {
	case errs.Is(err, errs.ErrShowtimeNotFound):
		return newResponse(http.StatusNotFound, "Showtime not found", nil)
	case errs.Is(err, errs.ErrBookingNotFound):
		return newResponse(http.StatusNotFound, "Booking not found", nil)
	case errs.Is(err, errs.ErrSeatConflict):
		var conflict *seatmap.ConflictError
		var seats []string
		if errs.As(err, &conflict) {
			seats = conflict.Codes
		}
		return newResponse(http.StatusConflict, "Some seats are already taken", SeatsDetail{Seats: seats})
	case errs.Is(err, errs.ErrInvalidRequest):
		var detail any
		var invalid *seatmap.InvalidSelectionError
		if errs.As(err, &invalid) && len(invalid.Codes) > 0 {
			detail = SeatsDetail{Seats: invalid.Codes}
		}
		return newResponse(http.StatusBadRequest, "Invalid booking request", detail)
	default:
		return newResponse(http.StatusInternalServerError, "Internal error", nil)
	}
}

// preserves original error for the request log
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}
	abort(c, err, newResponse(status, msg, detail))
}

// AbortWithServiceError renders err through FromError.
func AbortWithServiceError(c *gin.Context, err error) {
	if err == nil {
		panic("AbortWithServiceError: err cannot be nil")
	}
	abort(c, err, FromError(err))
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
