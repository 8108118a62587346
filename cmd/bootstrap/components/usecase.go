package components

import (
	"experience-market/internal/usecase"
	"experience-market/internal/usecase/commands"
	"experience-market/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewSettingsCommands,
		commands.NewCheckoutCommands,
		commands.NewExperienceCommands,
		commands.NewHostProfileCommands,
		commands.NewFavoritesCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSettingsQueries,
		queries.NewBookingQueries,
		queries.NewExperienceQueries,
		queries.NewHostProfileQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
