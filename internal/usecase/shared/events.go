package shared

import "time"

// BookingConfirmedEvent is published after seats are committed. Consumers get enough to
// notify the customer without calling back into the service.
type BookingConfirmedEvent struct {
	BookingID     string    `json:"booking_id"`
	ShowtimeID    string    `json:"showtime_id"`
	MovieTitle    string    `json:"movie_title"`
	Hall          string    `json:"hall"`
	StartsAt      time.Time `json:"starts_at"`
	Seats         []string  `json:"seats"`
	Total         int64     `json:"total"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	ConfirmedAt   time.Time `json:"confirmed_at"`
}
