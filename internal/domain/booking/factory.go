package booking

import (
	"errors"

	"cinema-booking/internal/pkg/clock"
	"cinema-booking/internal/pkg/idgen"
)

var (
	ErrNoSeats       = errors.New("receipt needs at least one seat")
	ErrNegativePrice = errors.New("unit price cannot be negative")
)

type Factory struct {
	IDs   idgen.Generator
	Clock clock.Clock
}

func NewFactory(ids idgen.Generator, clock clock.Clock) *Factory {
	return &Factory{
		IDs:   ids,
		Clock: clock,
	}
}

// NewReceipt prices the committed seats at a flat unitPrice each.
func (f *Factory) NewReceipt(showtimeID string, unitPrice int64, seats []string, customer Customer) (*Receipt, error) {
	if len(seats) == 0 {
		return nil, ErrNoSeats
	}
	if unitPrice < 0 {
		return nil, ErrNegativePrice
	}

	return &Receipt{
		id:         f.IDs.NewID(),
		showtimeID: showtimeID,
		seats:      cloneCodes(seats),
		total:      unitPrice * int64(len(seats)),
		customer:   customer,
		bookedAt:   f.Clock.Now(),
	}, nil
}
