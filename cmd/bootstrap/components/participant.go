package components

import (
	"slotsync/internal/domain/schedule"
	"slotsync/internal/handler"
	"slotsync/internal/handler/api"
	"slotsync/internal/participant"
	"slotsync/internal/pkg/clock"
	"slotsync/internal/pkg/config"
	"slotsync/internal/pkg/errs"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		NewParticipantStore,
	),
)

// NewParticipantStore seeds the diary store from the configured template,
// starting at today's date.
func NewParticipantStore(cfg config.Config, clk clock.Clock) (*participant.Store, error) {
	bounds, err := schedule.ParseTimeRange(cfg.Participant.DayWindowStart, cfg.Participant.DayWindowEnd)
	if err != nil {
		return nil, errs.Wrap(err, "participant day window")
	}
	tmpl, err := participant.TemplateByName(cfg.Participant.TemplateName(), bounds)
	if err != nil {
		return nil, err
	}
	return participant.NewStore(
		cfg.Participant.Name,
		tmpl,
		schedule.DateOf(clk.Now()),
		cfg.Participant.Days,
	)
}

var ParticipantHandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewParticipantHandler,
	),
	fx.Invoke(handler.NewParticipantRouter),
)
