package commands

import (
	"context"
	"log/slog"

	"cinema-booking/internal/domain/booking"
	"cinema-booking/internal/domain/seatmap"
	"cinema-booking/internal/domain/showtime"
	reqdto "cinema-booking/internal/handler/dto/request"
	"cinema-booking/internal/infra"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/pkg/errs"
	"cinema-booking/internal/usecase/queries"
	"cinema-booking/internal/usecase/shared"
)

var (
	ErrShowtimeNotFound = errs.ErrShowtimeNotFound
	ErrInvalidRequest   = errs.ErrInvalidRequest
	ErrSeatConflict     = errs.ErrSeatConflict
)

type ReserveResult struct {
	Booking *queries.BookingView
}

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

type BookingCommands interface {
	Reserve(ctx context.Context, req reqdto.CreateBookingRequest) (*ReserveResult, error)
}

type bookingCommandsImpl struct {
	showtimes shared.ShowtimeReadStore
	seatMaps  shared.SeatMapStore
	bookings  shared.BookingStore
	publisher shared.EventPublisher
	factory   *booking.Factory
	maxSeats  int
	logger    *slog.Logger
}

func NewBookingCommands(
	showtimes shared.ShowtimeReadStore,
	seatMaps shared.SeatMapStore,
	bookings shared.BookingStore,
	publisher shared.EventPublisher,
	factory *booking.Factory,
	cfg config.Config,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		showtimes: showtimes,
		seatMaps:  seatMaps,
		bookings:  bookings,
		publisher: publisher,
		factory:   factory,
		maxSeats:  cfg.Booking.MaxSeatsPerTx,
		logger:    logger,
	}
}

func (b *bookingCommandsImpl) Reserve(ctx context.Context, req reqdto.CreateBookingRequest) (*ReserveResult, error) {
	customer, err := booking.NewCustomer(req.Customer.Name, req.Customer.Email, req.Customer.CardLast4)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}
	if b.maxSeats > 0 && len(req.Seats) > b.maxSeats {
		return nil, errs.Mark(errs.Newf("%d seats requested, limit is %d", len(req.Seats), b.maxSeats), ErrInvalidRequest)
	}

	st, err := b.findShowtime(ctx, req.ShowtimeID)
	if err != nil {
		return nil, err
	}

	receipt, err := b.commitSeats(ctx, st, req.Seats, customer)
	if err != nil {
		return nil, err
	}

	if saveErr := b.bookings.Save(ctx, receipt); saveErr != nil {
		// seats are already committed; the receipt still goes back to the caller
		b.logger.Error("failed to store booking receipt",
			"booking_id", receipt.ID(),
			"showtime_id", st.ID(),
			"error", saveErr)
	}

	b.publishConfirmed(ctx, st, receipt)

	return &ReserveResult{Booking: queries.BookingViewFromReceipt(receipt)}, nil
}

func (b *bookingCommandsImpl) findShowtime(ctx context.Context, id string) (*showtime.Showtime, error) {
	st, err := b.showtimes.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrShowtimeNotFound)
		}
		return nil, errs.Wrap(err, "find showtime")
	}
	return st, nil
}

// commitSeats runs the whole read-decide-write step under the showtime's lock.
func (b *bookingCommandsImpl) commitSeats(
	ctx context.Context,
	st *showtime.Showtime,
	codes []string,
	customer booking.Customer,
) (*booking.Receipt, error) {
	var receipt *booking.Receipt
	err := b.seatMaps.WithLock(ctx, st.ID(), func(m *seatmap.SeatMap) error {
		committed, err := m.TryReserve(codes)
		if err != nil {
			return err
		}
		receipt, err = b.factory.NewReceipt(st.ID(), st.Price(), committed, customer)
		return err
	})
	if err == nil {
		return receipt, nil
	}

	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, errs.Mark(err, ErrShowtimeNotFound)
	case errs.Is(err, seatmap.ErrInvalidSelection):
		return nil, errs.Mark(err, ErrInvalidRequest)
	case errs.Is(err, seatmap.ErrSeatsUnavailable):
		b.logger.Info("seat conflict",
			"showtime_id", st.ID(),
			"requested", codes,
			"conflicting", ConflictingSeats(err))
		return nil, errs.Mark(err, ErrSeatConflict)
	default:
		return nil, errs.Wrap(err, "commit seats")
	}
}

func (b *bookingCommandsImpl) publishConfirmed(ctx context.Context, st *showtime.Showtime, receipt *booking.Receipt) {
	event := shared.BookingConfirmedEvent{
		BookingID:     receipt.ID(),
		ShowtimeID:    st.ID(),
		MovieTitle:    st.Title(),
		Hall:          st.Hall(),
		StartsAt:      st.StartsAt(),
		Seats:         receipt.Seats(),
		Total:         receipt.Total(),
		CustomerName:  receipt.Customer().Name(),
		CustomerEmail: receipt.Customer().Email(),
		ConfirmedAt:   receipt.BookedAt(),
	}
	// the client may disconnect right after the commit; the event must still go out
	if err := b.publisher.PublishBookingConfirmed(context.WithoutCancel(ctx), event); err != nil {
		b.logger.Warn("failed to publish booking confirmed event",
			"booking_id", receipt.ID(),
			"error", err)
	}
}

// ConflictingSeats returns the seats that were taken when err is a seat conflict.
func ConflictingSeats(err error) []string {
	var conflict *seatmap.ConflictError
	if errs.As(err, &conflict) {
		return conflict.Codes
	}
	return nil
}

// InvalidSeats returns the offending codes when err rejected duplicate or unknown seats.
func InvalidSeats(err error) []string {
	var invalid *seatmap.InvalidSelectionError
	if errs.As(err, &invalid) {
		return invalid.Codes
	}
	return nil
}
