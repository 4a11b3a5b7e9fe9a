package response

import (
	"time"

	"cinema-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ShowtimeResponse struct {
	ShowtimeID string    `json:"showtimeId"`
	MovieID    string    `json:"movieId"`
	Title      string    `json:"title"`
	ShortTitle string    `json:"shortTitle"`
	Duration   int       `json:"duration"`
	Age        string    `json:"age"`
	Hall       string    `json:"hall"`
	SeatType   string    `json:"seatType"`
	Price      int64     `json:"price"`
	StartsAt   time.Time `json:"startsAt"`
	Banner     string    `json:"banner"`
	FreeSeats  int       `json:"freeSeats"`
	TotalSeats int       `json:"totalSeats"`
}

type SeatResponse struct {
	Code     string `json:"code"`
	Row      int    `json:"row"`
	Number   int    `json:"number"`
	ColStart int    `json:"colStart"`
	Status   string `json:"status"`
}

func FromShowtimeView(v *queries.ShowtimeView) *ShowtimeResponse {
	var res ShowtimeResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromShowtimeViews(views []*queries.ShowtimeView) []*ShowtimeResponse {
	res := make([]*ShowtimeResponse, len(views))
	for i, v := range views {
		res[i] = FromShowtimeView(v)
	}
	return res
}

func FromSeatViews(views []*queries.SeatView) []SeatResponse {
	res := make([]SeatResponse, len(views))
	for i, v := range views {
		_ = copier.Copy(&res[i], v)
	}
	return res
}
