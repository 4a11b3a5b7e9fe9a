package queries

import (
	"time"

	"cinema-booking/internal/domain/booking"
	"cinema-booking/internal/domain/seatmap"
	"cinema-booking/internal/domain/showtime"
)

// Read models (DTO for read side)
type ShowtimeView struct {
	ShowtimeID string    `json:"showtime_id"`
	MovieID    string    `json:"movie_id"`
	Title      string    `json:"title"`
	ShortTitle string    `json:"short_title"`
	Duration   int       `json:"duration"`
	Age        string    `json:"age"`
	Hall       string    `json:"hall"`
	SeatType   string    `json:"seat_type"`
	Price      int64     `json:"price"`
	StartsAt   time.Time `json:"starts_at"`
	Banner     string    `json:"banner"`
	FreeSeats  int       `json:"free_seats"`
	TotalSeats int       `json:"total_seats"`
}

type SeatView struct {
	Code     string `json:"code"`
	Row      int    `json:"row"`
	Number   int    `json:"number"`
	ColStart int    `json:"col_start"`
	Status   string `json:"status"`
}

type CustomerView struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	CardLast4 string `json:"card_last4"`
}

type BookingView struct {
	BookingID  string       `json:"booking_id"`
	ShowtimeID string       `json:"showtime_id"`
	Seats      []string     `json:"seats"`
	Total      int64        `json:"total"`
	Customer   CustomerView `json:"customer"`
	BookedAt   time.Time    `json:"booked_at"`
}

func toShowtimeView(st *showtime.Showtime, seats []seatmap.Seat) *ShowtimeView {
	free := 0
	for _, s := range seats {
		if s.IsFree() {
			free++
		}
	}
	return &ShowtimeView{
		ShowtimeID: st.ID(),
		MovieID:    st.MovieID(),
		Title:      st.Title(),
		ShortTitle: st.ShortTitle(),
		Duration:   st.DurationMin(),
		Age:        st.AgeRating(),
		Hall:       st.Hall(),
		SeatType:   st.SeatType(),
		Price:      st.Price(),
		StartsAt:   st.StartsAt(),
		Banner:     st.Banner(),
		FreeSeats:  free,
		TotalSeats: len(seats),
	}
}

func toSeatView(s seatmap.Seat) *SeatView {
	return &SeatView{
		Code:     s.Code(),
		Row:      s.Row(),
		Number:   s.Number(),
		ColStart: s.ColStart(),
		Status:   s.Status().String(),
	}
}

// BookingViewFromReceipt is shared with the command side for read-after-write responses.
func BookingViewFromReceipt(r *booking.Receipt) *BookingView {
	c := r.Customer()
	return &BookingView{
		BookingID:  r.ID(),
		ShowtimeID: r.ShowtimeID(),
		Seats:      r.Seats(),
		Total:      r.Total(),
		Customer: CustomerView{
			Name:      c.Name(),
			Email:     c.Email(),
			CardLast4: c.CardLast4(),
		},
		BookedAt: r.BookedAt(),
	}
}
