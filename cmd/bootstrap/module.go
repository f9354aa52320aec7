package bootstrap

import (
	"slotsync/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoordinatorModule wires the booking coordinator service.
var CoordinatorModule = fx.Options(
	ConfigModule,
	LoggerModule,
	components.ClientModule,
	components.UseCaseModule,
	components.CoordinatorHandlerModule,
)

// ParticipantModule wires one participant calendar service.
var ParticipantModule = fx.Options(
	ConfigModule,
	LoggerModule,
	components.StoreModule,
	components.ParticipantHandlerModule,
)
