package queries

import (
	"context"

	"cinema-booking/internal/infra"
	"cinema-booking/internal/pkg/errs"
	"cinema-booking/internal/usecase/shared"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

type BookingQueries interface {
	GetByID(ctx context.Context, id string) (*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings shared.BookingStore
}

func NewBookingQueries(bookings shared.BookingStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id string) (*BookingView, error) {
	receipt, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Wrap(err, "find booking")
	}
	return BookingViewFromReceipt(receipt), nil
}
