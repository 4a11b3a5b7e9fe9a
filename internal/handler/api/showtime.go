package api

import (
	"net/http"

	resdto "cinema-booking/internal/handler/dto/response"
	"cinema-booking/internal/handler/httperr"
	"cinema-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ShowtimeHandler struct {
	showtimes queries.ShowtimeQueries
	seatMaps  queries.SeatMapQueries
}

func NewShowtimeHandler(showtimes queries.ShowtimeQueries, seatMaps queries.SeatMapQueries) *ShowtimeHandler {
	return &ShowtimeHandler{showtimes: showtimes, seatMaps: seatMaps}
}

// @Summary List showtimes
// @Description List every bookable showtime with its movie details
// @Tags showtimes
// @Produce json
// @Success 200 {array} resdto.ShowtimeResponse
// @Router /api/showtimes [get]
func (h *ShowtimeHandler) List(c *gin.Context) {
	views, err := h.showtimes.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromShowtimeViews(views))
}

// @Summary Get showtime
// @Description Get one showtime by ID
// @Tags showtimes
// @Produce json
// @Param id path string true "Showtime ID"
// @Success 200 {object} resdto.ShowtimeResponse
// @Failure 404 {object} httperr.Response
// @Router /api/showtimes/{id} [get]
func (h *ShowtimeHandler) Get(c *gin.Context) {
	view, err := h.showtimes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromShowtimeView(view))
}

// @Summary Get seat map
// @Description List the seats of a showtime with their current status. The result may be
// @Description stale by the time it is rendered; booking re-checks every seat.
// @Tags showtimes
// @Produce json
// @Param id path string true "Showtime ID"
// @Success 200 {array} resdto.SeatResponse
// @Failure 404 {object} httperr.Response
// @Router /api/showtimes/{id}/seats [get]
func (h *ShowtimeHandler) Seats(c *gin.Context) {
	views, err := h.seatMaps.ListSeatMap(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSeatViews(views))
}
