package response

import (
	"time"

	"cinema-booking/internal/usecase/queries"
)

type CustomerResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	CardLast4 string `json:"cardLast4"`
}

type BookingResponse struct {
	BookingID  string           `json:"bookingId"`
	ShowtimeID string           `json:"showtimeId"`
	Seats      []string         `json:"seats"`
	Total      int64            `json:"total"`
	Customer   CustomerResponse `json:"customer"`
	BookedAt   time.Time        `json:"bookedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		BookingID:  v.BookingID,
		ShowtimeID: v.ShowtimeID,
		Seats:      v.Seats,
		Total:      v.Total,
		Customer: CustomerResponse{
			Name:      v.Customer.Name,
			Email:     v.Customer.Email,
			CardLast4: v.Customer.CardLast4,
		},
		BookedAt: v.BookedAt,
	}
}
