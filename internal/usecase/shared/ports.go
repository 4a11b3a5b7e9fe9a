package shared

import (
	"context"

	"cinema-booking/internal/domain/booking"
	"cinema-booking/internal/domain/seatmap"
	"cinema-booking/internal/domain/showtime"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

type ShowtimeReadStore interface {
	FindAll(ctx context.Context) ([]*showtime.Showtime, error)
	FindByID(ctx context.Context, id string) (*showtime.Showtime, error)
}

type SeatMapStore interface {
	// Snapshot: point-in-time copy for display, may be stale immediately
	Snapshot(ctx context.Context, showtimeID string) ([]seatmap.Seat, error)
	// WithLock: exclusive read-decide-write section for one showtime
	WithLock(ctx context.Context, showtimeID string, fn func(m *seatmap.SeatMap) error) error
}

type BookingStore interface {
	Save(ctx context.Context, r *booking.Receipt) error
	FindByID(ctx context.Context, id string) (*booking.Receipt, error)
}

type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error
}
