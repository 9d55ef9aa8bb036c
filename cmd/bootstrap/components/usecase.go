package components

import (
	"coupon-swap/internal/pkg/clock"
	"coupon-swap/internal/usecase/commands"
	"coupon-swap/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTradeQueries,
		queries.NewCouponQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTradeCommands,
		commands.NewCouponCommands,
		commands.NewUserCommands,
	),
)
