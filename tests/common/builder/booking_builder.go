//go:build unit || e2e

package builder

import (
	"time"

	"cinema-booking/internal/domain/booking"
	reqdto "cinema-booking/internal/handler/dto/request"
	"cinema-booking/internal/usecase/queries"
)

type BookingBuilder struct {
	BookingID    string
	ShowtimeID   string
	Seats        []string
	UnitPrice    int64
	CustomerName string
	Email        string
	CardLast4    string
	BookedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		BookingID:    "BK-000001",
		ShowtimeID:   "s1",
		Seats:        []string{"R1-1", "R1-2"},
		UnitPrice:    3500,
		CustomerName: "Jack Sparrow",
		Email:        "jack@blackpearl.example",
		CardLast4:    "4242",
		BookedAt:     time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithCustomerName(name string) *BookingBuilder {
	b.CustomerName = name
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithCardLast4(card string) *BookingBuilder {
	b.CardLast4 = card
	return b
}

func (b *BookingBuilder) WithShowtimeID(id string) *BookingBuilder {
	b.ShowtimeID = id
	return b
}

func (b *BookingBuilder) WithSeats(seats ...string) *BookingBuilder {
	b.Seats = seats
	return b
}

// Build methods
func (b *BookingBuilder) BuildCustomer() (booking.Customer, error) {
	return booking.NewCustomer(b.CustomerName, b.Email, b.CardLast4)
}

func (b *BookingBuilder) BuildReceipt() *booking.Receipt {
	customer, err := b.BuildCustomer()
	if err != nil {
		panic(err)
	}
	total := b.UnitPrice * int64(len(b.Seats))
	return booking.ReconstructReceipt(b.BookingID, b.ShowtimeID, b.Seats, total, customer, b.BookedAt)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	seats := make([]string, len(b.Seats))
	copy(seats, b.Seats)
	return reqdto.CreateBookingRequest{
		ShowtimeID: b.ShowtimeID,
		Seats:      seats,
		Customer: reqdto.CustomerRequest{
			Name:      b.CustomerName,
			Email:     b.Email,
			CardLast4: b.CardLast4,
		},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.BookingViewFromReceipt(b.BuildReceipt())
}
