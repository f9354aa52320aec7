package components

import (
	"slotsync/internal/handler"
	"slotsync/internal/handler/api"
	"slotsync/internal/infra/participantclient"
	"slotsync/internal/usecase/commands"
	"slotsync/internal/usecase/queries"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("clients",
	fx.Provide(
		fx.Annotate(
			participantclient.NewRegistry,
			fx.As(new(commands.ClientResolver)),
		),
	),
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		commands.NewMatchCommands,
		queries.NewStatusQueries,
	),
)

var CoordinatorHandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewMatchHandler,
	),
	fx.Invoke(handler.NewCoordinatorRouter),
)
