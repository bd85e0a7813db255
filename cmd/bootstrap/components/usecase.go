package components

import (
	"rugboost-api/internal/domain/inspection"
	"rugboost-api/internal/pkg/clock"
	"rugboost-api/internal/pkg/password"
	"rugboost-api/internal/usecase"
	"rugboost-api/internal/usecase/commands"
	"rugboost-api/internal/usecase/queries"

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
		password.NewBcryptHasher,
		fx.As(new(password.Hasher)),
	),
	inspection.DefaultTable,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewContactCommands,
		commands.NewRegistrationCommands,
		commands.NewInspectionCommands,
		commands.NewSocialCommands,
		commands.NewProfileCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewInspectionQueries,
		queries.NewPhotoQueries,
		queries.NewSocialQueries,
		queries.NewProfileQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
