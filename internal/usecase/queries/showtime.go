package queries

import (
	"context"

	"cinema-booking/internal/infra"
	"cinema-booking/internal/pkg/errs"
	"cinema-booking/internal/usecase/shared"
)

var (
	ErrShowtimeNotFound = errs.ErrShowtimeNotFound
	ErrBookingNotFound  = errs.ErrBookingNotFound
)

//go:generate mockgen -source=showtime.go -destination=../../../tests/mock/queries/showtime.go -package=queriesmock

type ShowtimeQueries interface {
	List(ctx context.Context) ([]*ShowtimeView, error)
	GetByID(ctx context.Context, id string) (*ShowtimeView, error)
}

type showtimeQueriesImpl struct {
	showtimes shared.ShowtimeReadStore
	seatMaps  shared.SeatMapStore
}

func NewShowtimeQueries(showtimes shared.ShowtimeReadStore, seatMaps shared.SeatMapStore) ShowtimeQueries {
	return &showtimeQueriesImpl{showtimes: showtimes, seatMaps: seatMaps}
}

func (q *showtimeQueriesImpl) List(ctx context.Context) ([]*ShowtimeView, error) {
	all, err := q.showtimes.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list showtimes")
	}

	result := make([]*ShowtimeView, 0, len(all))
	for _, st := range all {
		seats, err := q.seatMaps.Snapshot(ctx, st.ID())
		if err != nil {
			return nil, errs.Wrapf(err, "snapshot seats of showtime %s", st.ID())
		}
		result = append(result, toShowtimeView(st, seats))
	}
	return result, nil
}

func (q *showtimeQueriesImpl) GetByID(ctx context.Context, id string) (*ShowtimeView, error) {
	st, err := q.showtimes.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrShowtimeNotFound)
		}
		return nil, errs.Wrap(err, "find showtime")
	}

	seats, err := q.seatMaps.Snapshot(ctx, st.ID())
	if err != nil {
		return nil, errs.Wrapf(err, "snapshot seats of showtime %s", st.ID())
	}
	return toShowtimeView(st, seats), nil
}
