package bootstrap

import (
	"recipe-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	PushModule,
	components.PersistenceModule,
	components.UseCaseModule,
	ReminderModule,
	components.HandlerModule,
)
