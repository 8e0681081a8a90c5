package components

import (
	"go.uber.org/fx"

	"stash-backend/internal/handler"
	"stash-backend/internal/handler/api"
	"stash-backend/internal/handler/middleware"
	"stash-backend/internal/usecase"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReceiptHandler,
		api.NewWalletHandler,
		api.NewGamificationHandler,
		api.NewInsightHandler,
		api.NewDashboardHandler,
		func(authUseCase usecase.AuthUseCase) middleware.TokenValidator {
			return authUseCase
		},
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
