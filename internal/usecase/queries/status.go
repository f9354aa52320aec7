package queries

import (
	"context"
	"sort"
	"sync"
	"time"

	"slotsync/internal/pkg/config"
	"slotsync/internal/usecase/commands"
)

// ParticipantStatusView is one participant's liveness as seen from the
// coordinator.
type ParticipantStatusView struct {
	ID     string
	Online bool
}

// StatusQueries answers the read-only "who is reachable right now"
// question, used by the dashboard-style status endpoint and the CLI.
type StatusQueries interface {
	ParticipantStatus(ctx context.Context) []ParticipantStatusView
}

type statusQueriesImpl struct {
	resolver     commands.ClientResolver
	probeTimeout time.Duration
}

func NewStatusQueries(resolver commands.ClientResolver, cfg config.Config) StatusQueries {
	return &statusQueriesImpl{
		resolver:     resolver,
		probeTimeout: cfg.Coordinator.ProbeTimeout,
	}
}

func (q *statusQueriesImpl) ParticipantStatus(ctx context.Context) []ParticipantStatusView {
	ids := q.resolver.IDs()
	views := make([]ParticipantStatusView, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		client, ok := q.resolver.Resolve(id)
		if !ok {
			views[i] = ParticipantStatusView{ID: id}
			continue
		}
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			pctx, cancel := context.WithTimeout(ctx, q.probeTimeout)
			defer cancel()
			views[i] = ParticipantStatusView{ID: id, Online: client.Ping(pctx) == nil}
		}(i, id)
	}
	wg.Wait()

	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}
