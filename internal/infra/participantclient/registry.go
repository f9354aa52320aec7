package participantclient

import (
	"log/slog"
	"strings"

	"slotsync/internal/pkg/config"
	"slotsync/internal/pkg/errs"
	"slotsync/internal/usecase/commands"
)

// Registry holds one client per configured participant, keyed by name.
// Configuration entries are "name=baseURL" pairs; the configured order is
// preserved because the coordinator commits bookings in registry order.
type Registry struct {
	order   []string
	clients map[string]commands.ParticipantClient
}

func NewRegistry(cfg config.Config, logger *slog.Logger) (*Registry, error) {
	r := &Registry{clients: make(map[string]commands.ParticipantClient)}
	for _, pair := range cfg.Coordinator.Participants {
		name, baseURL, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || name == "" || baseURL == "" {
			return nil, errs.Newf("malformed participant entry %q, want name=baseURL", pair)
		}
		if _, dup := r.clients[name]; dup {
			return nil, errs.Newf("duplicate participant %q", name)
		}
		r.order = append(r.order, name)
		r.clients[name] = New(name, baseURL)
		logger.Info("participant registered", "participant", name, "base_url", baseURL)
	}
	if len(r.order) == 0 {
		return nil, errs.ErrNoParticipants
	}
	return r, nil
}

func (r *Registry) Resolve(id string) (commands.ParticipantClient, bool) {
	c, ok := r.clients[id]
	return c, ok
}

func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}
