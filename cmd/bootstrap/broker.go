package bootstrap

import (
	"log/slog"

	"cinema-booking/internal/infra/broker"
	"cinema-booking/internal/pkg/clock"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(cfg config.Config, clk clock.Clock, logger *slog.Logger) shared.EventPublisher {
	if cfg.Broker.URL == "" {
		logger.Info("AMQP_URL not set, booking events are not published")
		return broker.NewNoopPublisher(logger)
	}
	return broker.NewAMQPPublisher(cfg.Broker, clk, logger)
}
