package components

import (
	"club-booking/internal/handler"
	"club-booking/internal/handler/api"
	reqdto "club-booking/internal/handler/dto/request"
	"club-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewEventHandler,
		api.NewPaymentHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		reqdto.RegisterValidators,
		handler.NewRouter,
	),
)
