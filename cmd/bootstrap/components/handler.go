package components

import (
	"cinema-booking/internal/handler"
	"cinema-booking/internal/handler/api"
	"cinema-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewShowtimeHandler,
		api.NewBookingHandler,
		middleware.NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)
