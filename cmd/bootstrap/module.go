package bootstrap

import (
	"cinema-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	InfraModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// InfraModule groups everything outside the process boundary plus startup seeding.
var InfraModule = fx.Options(
	StoreModule,
	RedisModule,
	BrokerModule,
)
