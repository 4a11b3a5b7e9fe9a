package components

import (
	"cinema-booking/internal/domain/booking"
	"cinema-booking/internal/pkg/clock"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/pkg/idgen"
	"cinema-booking/internal/usecase/commands"
	"cinema-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) idgen.Generator {
		return idgen.NewUUIDGenerator(cfg.Booking.IDPrefix)
	},
	booking.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewShowtimeQueries,
		queries.NewSeatMapQueries,
		queries.NewBookingQueries,
	),
)
