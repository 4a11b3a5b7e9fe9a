package queries

import (
	"context"

	"cinema-booking/internal/infra"
	"cinema-booking/internal/pkg/errs"
	"cinema-booking/internal/usecase/shared"
)

//go:generate mockgen -source=seatmap.go -destination=../../../tests/mock/queries/seatmap.go -package=queriesmock

type SeatMapQueries interface {
	ListSeatMap(ctx context.Context, showtimeID string) ([]*SeatView, error)
}

type seatMapQueriesImpl struct {
	seatMaps shared.SeatMapStore
}

func NewSeatMapQueries(seatMaps shared.SeatMapStore) SeatMapQueries {
	return &seatMapQueriesImpl{seatMaps: seatMaps}
}

func (q *seatMapQueriesImpl) ListSeatMap(ctx context.Context, showtimeID string) ([]*SeatView, error) {
	seats, err := q.seatMaps.Snapshot(ctx, showtimeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrShowtimeNotFound)
		}
		return nil, errs.Wrap(err, "snapshot seat map")
	}

	result := make([]*SeatView, len(seats))
	for i, s := range seats {
		result[i] = toSeatView(s)
	}
	return result, nil
}
