package bootstrap

import (
	"club-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MetricsModule,
	components.PersistenceModule,
	components.AdapterModule,
	components.UseCaseModule,
	components.HandlerModule,
)
