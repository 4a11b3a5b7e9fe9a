package api

import (
	"net/http"

	reqdto "cinema-booking/internal/handler/dto/request"
	resdto "cinema-booking/internal/handler/dto/response"
	"cinema-booking/internal/handler/httperr"
	"cinema-booking/internal/pkg/errs"
	"cinema-booking/internal/usecase/commands"
	"cinema-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) (*BookingHandler, error) {
	if err := reqdto.RegisterValidators(); err != nil {
		return nil, errs.Wrap(err, "booking handler")
	}
	return &BookingHandler{cmds: cmds, q: q}, nil
}

// @Summary Create booking
// @Description Reserve all requested seats of one showtime, or none of them
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "detail.seats lists the seats already taken"
// @Failure 429 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "showtimeId, seats and customer name, email and cardLast4 are required", nil)
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}

	c.Header("Location", "/api/bookings/"+result.Booking.BookingID)
	c.JSON(http.StatusCreated, resdto.FromBookingView(result.Booking))
}

// @Summary Get booking
// @Description Get a booking receipt made since the service started
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
