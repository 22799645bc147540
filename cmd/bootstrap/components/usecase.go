package components

import (
	"vidly/internal/domain/rental"
	"vidly/internal/pkg/clock"
	"vidly/internal/usecase"
	"vidly/internal/usecase/commands"
	"vidly/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		rental.NewDailyFeeCalculator,
		fx.As(new(rental.FeeCalculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewGenreCommands,
		commands.NewMovieCommands,
		commands.NewCustomerCommands,
		commands.NewRentalCommands,
		commands.NewReturnCommands,
		commands.NewUserCommands,
		commands.NewAuthCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewGenreQueries,
		queries.NewMovieQueries,
		queries.NewCustomerQueries,
		queries.NewRentalQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
