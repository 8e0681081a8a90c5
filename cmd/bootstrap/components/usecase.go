package components

import (
	"go.uber.org/fx"

	"stash-backend/internal/pkg/clock"
	"stash-backend/internal/pkg/config"
	"stash-backend/internal/pkg/jwt"
	"stash-backend/internal/pkg/randcode"
	"stash-backend/internal/simnet"
	"stash-backend/internal/usecase"
	"stash-backend/internal/usecase/commands"
	"stash-backend/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) simnet.Simulator {
		return simnet.New(cfg.Sim)
	},
	fx.Annotate(
		randcode.New,
		fx.As(new(commands.CodeGenerator)),
		fx.As(new(queries.CodeGenerator)),
	),
	func(jwtService *jwt.Service, cfg config.Config) (usecase.AuthUseCase, error) {
		return usecase.NewAuthUseCase(jwtService, cfg.Demo)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReceiptCommands,
		commands.NewWalletCommands,
		commands.NewPointsCommands,
		commands.NewInsightCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProgressQueries,
		queries.NewWalletQueries,
		queries.NewAnalyticsQueries,
	),
)
