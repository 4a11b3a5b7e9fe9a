package components

import (
	"cinema-booking/internal/infra/memstore"
	"cinema-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			memstore.NewCatalogStore,
			fx.As(fx.Self()),
			fx.As(new(shared.ShowtimeReadStore)),
		),
		fx.Annotate(
			memstore.NewSeatMapStore,
			fx.As(fx.Self()),
			fx.As(new(shared.SeatMapStore)),
		),
		fx.Annotate(
			memstore.NewBookingStore,
			fx.As(new(shared.BookingStore)),
		),
	),
)
