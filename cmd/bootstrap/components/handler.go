package components

import (
	"eatery-api/internal/handler"
	"eatery-api/internal/handler/api"
	"eatery-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewAdminHandler,
		api.NewMailConfigHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
