//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"cinema-booking/internal/domain/seatmap"
	"cinema-booking/internal/handler/api"
	resdto "cinema-booking/internal/handler/dto/response"
	"cinema-booking/internal/infra/memstore"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/pkg/errs"
	"cinema-booking/internal/usecase/queries"
	"cinema-booking/tests/common/builder"
	"cinema-booking/tests/common/httptest"
	queriesmock "cinema-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ShowtimeHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockShowtimes *queriesmock.MockShowtimeQueries
	mockSeatMaps  *queriesmock.MockSeatMapQueries
	handler       *api.ShowtimeHandler
}

func (s *ShowtimeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockShowtimes = queriesmock.NewMockShowtimeQueries(s.mockCtrl)
	s.mockSeatMaps = queriesmock.NewMockSeatMapQueries(s.mockCtrl)
	s.handler = api.NewShowtimeHandler(s.mockShowtimes, s.mockSeatMaps)

	s.router.GET("/showtimes", s.handler.List)
	s.router.GET("/showtimes/:id", s.handler.Get)
	s.router.GET("/showtimes/:id/seats", s.handler.Seats)
}

func (s *ShowtimeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestShowtimeHandlerSuite(t *testing.T) {
	suite.Run(t, new(ShowtimeHandlerTestSuite))
}

func (s *ShowtimeHandlerTestSuite) TestList() {
	s.Run("success: returns every showtime", func() {
		views := []*queries.ShowtimeView{
			builder.NewShowtimeBuilder().BuildView(),
			builder.NewShowtimeBuilder().WithID("s2").BuildView(),
		}
		s.mockShowtimes.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/showtimes", nil)

		var res []resdto.ShowtimeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 2)
		s.Equal("s1", res[0].ShowtimeID)
		s.Equal("s2", res[1].ShowtimeID)
		s.Equal(int64(3500), res[0].Price)
		s.Equal(16, res[0].FreeSeats)
	})

	s.Run("store failure returns 500", func() {
		s.mockShowtimes.EXPECT().List(gomock.Any()).Return(nil, errs.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/showtimes", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

func (s *ShowtimeHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewShowtimeBuilder().BuildView()
		s.mockShowtimes.EXPECT().GetByID(gomock.Any(), "s1").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/showtimes/s1", nil)

		var res resdto.ShowtimeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(view.Title, res.Title)
		s.Equal(view.ShortTitle, res.ShortTitle)
		s.Equal(view.Hall, res.Hall)
		s.True(view.StartsAt.Equal(res.StartsAt))
	})

	s.Run("unknown showtime returns 404", func() {
		s.mockShowtimes.EXPECT().GetByID(gomock.Any(), "s9").
			Return(nil, errs.Mark(errs.New("showtime s9"), queries.ErrShowtimeNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/showtimes/s9", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Showtime not found")
	})
}

func (s *ShowtimeHandlerTestSuite) TestSeats() {
	s.Run("success: returns seats in layout order", func() {
		views := []*queries.SeatView{
			{Code: "R5-1", Row: 5, Number: 1, ColStart: 1, Status: "free"},
			{Code: "R5-2", Row: 5, Number: 2, ColStart: 4, Status: "occupied"},
		}
		s.mockSeatMaps.EXPECT().ListSeatMap(gomock.Any(), "s1").Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/showtimes/s1/seats", nil)

		var res []resdto.SeatResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal([]resdto.SeatResponse{
			{Code: "R5-1", Row: 5, Number: 1, ColStart: 1, Status: "free"},
			{Code: "R5-2", Row: 5, Number: 2, ColStart: 4, Status: "occupied"},
		}, res)
	})

	s.Run("unknown showtime returns 404", func() {
		s.mockSeatMaps.EXPECT().ListSeatMap(gomock.Any(), "s9").
			Return(nil, errs.Mark(errs.New("showtime s9"), queries.ErrShowtimeNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/showtimes/s9/seats", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Showtime not found")
	})
}

// The seeded VIP hall, rendered through the real stores, must keep its wire shape.
func TestSeatMapGolden(t *testing.T) {
	gin.SetMode(gin.TestMode)

	catalog := memstore.NewCatalogStore()
	seatMaps := memstore.NewSeatMapStore()
	require.NoError(t, memstore.Seed(config.NewTestConfig().Catalog, catalog, seatMaps))

	err := seatMaps.WithLock(context.Background(), "s1", func(m *seatmap.SeatMap) error {
		_, err := m.TryReserve([]string{"R5-4", "R1-1"})
		return err
	})
	require.NoError(t, err)

	h := api.NewShowtimeHandler(queries.NewShowtimeQueries(catalog, seatMaps), queries.NewSeatMapQueries(seatMaps))
	router := gin.New()
	router.GET("/showtimes/:id/seats", h.Seats)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/showtimes/s1/seats", nil)

	var seats []resdto.SeatResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &seats)

	g := goldie.New(t, goldie.WithFixtureDir("testdata"))
	g.AssertJson(t, "seatmap_s1", seats)
}
