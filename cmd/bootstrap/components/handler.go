package components

import (
	"recipe-scheduler/internal/handler"
	"recipe-scheduler/internal/handler/api"
	"recipe-scheduler/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewScheduleHandler,
		api.NewDeviceHandler,
		middleware.NewAuthMiddleware,
		func(schedule *api.ScheduleHandler, device *api.DeviceHandler) handler.Handlers {
			return handler.Handlers{Schedule: schedule, Device: device}
		},
	),
	fx.Invoke(handler.NewRouter),
)
