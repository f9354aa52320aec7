package commands

import (
	"context"

	"slotsync/internal/domain/schedule"
)

// ParticipantClient is the coordinator's view of one calendar service. Every
// call carries a context with an explicit deadline; exceeding it surfaces as
// errs.ErrParticipantUnavailable, never as an indefinite wait.
type ParticipantClient interface {
	ID() string
	// Ping is the cheap preflight liveness gate. A false negative only
	// costs an aborted run, never data corruption.
	Ping(ctx context.Context) error
	FetchDiary(ctx context.Context) (schedule.Diary, error)
	// Book asks the participant to place a booked appointment. Returns
	// errs.ErrSlotTaken when the slot is no longer free.
	Book(ctx context.Context, date schedule.Date, r schedule.TimeRange, label string) error
	// Cancel is the compensation path. Participants without a cancel
	// operation report errs.ErrCancelUnsupported.
	Cancel(ctx context.Context, date schedule.Date, r schedule.TimeRange) error
	ResetDiary(ctx context.Context) (schedule.Diary, error)
}

// ClientResolver hands out clients for the participants configured for this
// coordinator.
type ClientResolver interface {
	Resolve(id string) (ParticipantClient, bool)
	IDs() []string
}
