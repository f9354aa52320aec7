package commands

import (
	"context"
	"log/slog"
	"sync"

	"slotsync/internal/domain/match"
	"slotsync/internal/domain/schedule"
	"slotsync/internal/pkg/config"
	"slotsync/internal/pkg/errs"

	"github.com/google/uuid"
)

// RunStatus is the terminal outcome of a coordination run.
type RunStatus string

const (
	RunCommitted       RunStatus = "committed"
	RunPartiallyFailed RunStatus = "partially_failed"
	RunAborted         RunStatus = "aborted"
)

// Abort reasons reported to the caller. NoCommonSlot is a normal, expected
// outcome rather than a failure.
const (
	ReasonParticipantUnavailable = "participant_unavailable"
	ReasonDiaryFetchFailed       = "diary_fetch_failed"
	ReasonNoCommonSlot           = "no_common_slot"
	ReasonTimeout                = "timeout"
)

// BookingStatus tracks one participant through the commit phase.
type BookingStatus string

const (
	BookingPending            BookingStatus = "pending"
	BookingCommitted          BookingStatus = "committed"
	BookingFailed             BookingStatus = "failed"
	BookingRolledBack         BookingStatus = "rolled_back"
	BookingCompensationFailed BookingStatus = "compensation_failed"
)

// Coordinator state machine. States only ever advance; the transition trail
// is reported with the result.
type runState string

const (
	stateInit                  runState = "Init"
	stateHealthChecking        runState = "HealthChecking"
	stateFetchingDiaries       runState = "FetchingDiaries"
	stateComputingAvailability runState = "ComputingAvailability"
	stateIntersecting          runState = "Intersecting"
	stateSelecting             runState = "Selecting"
	stateCommitting            runState = "Committing"
	stateCommitted             runState = "Committed"
	statePartiallyFailed       runState = "PartiallyFailed"
	stateAborted               runState = "Aborted"
)

type ScheduleMatchParams struct {
	ParticipantIDs  []string
	DurationMinutes int
	DayWindowStart  string // "HH:MM", empty for configured default
	DayWindowEnd    string
	SearchDays      int // 0 for configured default
	Strategy        string
	Label           string
}

type ParticipantOutcome struct {
	FreeSlots int
	Booking   BookingStatus
}

type MatchResult struct {
	RunID           uuid.UUID
	Status          RunStatus
	Reason          string
	SelectedSlot    *match.Slot
	CandidatesFound int
	Participants    map[string]*ParticipantOutcome
	Transitions     []string
}

// MatchCommands coordinates a multi-party appointment across independent
// calendar services. Transport failures during a run are converted into the
// structured MatchResult; the error return is reserved for caller mistakes
// rejected before any I/O.
type MatchCommands interface {
	ScheduleMatch(ctx context.Context, params ScheduleMatchParams) (*MatchResult, error)
	ResetParticipant(ctx context.Context, participantID string) (schedule.Diary, error)
}

type matchUseCaseImpl struct {
	resolver ClientResolver
	cfg      config.CoordinatorConfig
	logger   *slog.Logger
}

func NewMatchCommands(
	resolver ClientResolver,
	cfg config.Config,
	logger *slog.Logger,
) MatchCommands {
	return &matchUseCaseImpl{
		resolver: resolver,
		cfg:      cfg.Coordinator,
		logger:   logger,
	}
}

// run is the in-memory Booking Transaction for a single ScheduleMatch call.
// It never outlives the call.
type run struct {
	id       uuid.UUID
	state    runState
	trail    []string
	ids      []string
	clients  map[string]ParticipantClient
	outcomes map[string]*ParticipantOutcome
	logger   *slog.Logger
}

func (r *run) to(next runState) {
	r.state = next
	r.trail = append(r.trail, string(next))
	r.logger.Info("run state", "run_id", r.id, "state", string(next))
}

func (r *run) result(status RunStatus, reason string) *MatchResult {
	return &MatchResult{
		RunID:        r.id,
		Status:       status,
		Reason:       reason,
		Participants: r.outcomes,
		Transitions:  r.trail,
	}
}

func (u *matchUseCaseImpl) ScheduleMatch(ctx context.Context, params ScheduleMatchParams) (*MatchResult, error) {
	bounds, searchDays, step, err := u.resolveWindowConfig(params)
	if err != nil {
		return nil, err
	}
	if params.DurationMinutes <= 0 || params.DurationMinutes > bounds.Minutes() {
		return nil, errs.Mark(errs.Newf("duration %d minutes", params.DurationMinutes), errs.ErrInvalidRange)
	}
	if len(params.ParticipantIDs) == 0 {
		return nil, errs.ErrNoParticipants
	}

	r := &run{
		id:       uuid.New(),
		state:    stateInit,
		trail:    []string{string(stateInit)},
		ids:      params.ParticipantIDs,
		clients:  make(map[string]ParticipantClient, len(params.ParticipantIDs)),
		outcomes: make(map[string]*ParticipantOutcome, len(params.ParticipantIDs)),
		logger:   u.logger,
	}
	for _, id := range params.ParticipantIDs {
		client, ok := u.resolver.Resolve(id)
		if !ok {
			return nil, errs.Mark(errs.Newf("participant %q", id), errs.ErrUnknownParticipant)
		}
		r.clients[id] = client
		r.outcomes[id] = &ParticipantOutcome{Booking: BookingPending}
	}

	ctx, cancel := context.WithTimeout(ctx, u.cfg.RunTimeout)
	defer cancel()

	// HealthChecking: cheap preflight gate before the expensive fetches.
	r.to(stateHealthChecking)
	if offline := u.probeAll(ctx, r); len(offline) > 0 {
		r.to(stateAborted)
		u.logger.Warn("participants offline, aborting run", "run_id", r.id, "offline", offline)
		return r.result(RunAborted, ReasonParticipantUnavailable), nil
	}

	// FetchingDiaries: one concurrent fetch per participant, independent
	// timeouts. Partial diary data is never used for intersection: a missing
	// participant trivially has no guaranteed-free window, and intersecting
	// without it would be over-permissive.
	r.to(stateFetchingDiaries)
	diaries, fetchFailed := u.fetchDiaries(ctx, r)
	if len(fetchFailed) > 0 {
		r.to(stateAborted)
		reason := ReasonDiaryFetchFailed
		if ctx.Err() != nil {
			reason = ReasonTimeout
		}
		return r.result(RunAborted, reason), nil
	}

	// ComputingAvailability: pure local computation per participant.
	r.to(stateComputingAvailability)
	freeByParticipant := make(map[string][]match.Slot, len(r.ids))
	for id, diary := range diaries {
		free, ferr := schedule.FreeWindows(limitDays(diary, searchDays), bounds, params.DurationMinutes, step)
		if ferr != nil {
			return nil, ferr
		}
		slots := make([]match.Slot, 0)
		for date, windows := range free {
			for _, w := range windows {
				slots = append(slots, match.Slot{Date: date, Range: w})
			}
		}
		freeByParticipant[id] = slots
		r.outcomes[id].FreeSlots = len(slots)
	}

	r.to(stateIntersecting)
	candidates, err := match.Intersect(freeByParticipant)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		r.to(stateAborted)
		return r.result(RunAborted, ReasonNoCommonSlot), nil
	}

	r.to(stateSelecting)
	strategyName := params.Strategy
	if strategyName == "" {
		strategyName = u.cfg.Strategy
	}
	slot, ok := match.Select(ctx, candidates, match.StrategyByName(strategyName))
	if !ok {
		r.to(stateAborted)
		return r.result(RunAborted, ReasonNoCommonSlot), nil
	}
	u.logger.Info("slot selected",
		"run_id", r.id, "slot", slot.String(), "strategy", strategyName, "candidates", len(candidates))

	// Committing: sequential, at most one outstanding booking call per
	// participant. On failure after at least one success, compensate.
	r.to(stateCommitting)
	label := params.Label
	if label == "" {
		label = "Scheduled match"
	}
	res := u.commit(ctx, r, slot, label)
	res.SelectedSlot = &slot
	res.CandidatesFound = len(candidates)
	return res, nil
}

func (u *matchUseCaseImpl) resolveWindowConfig(params ScheduleMatchParams) (schedule.TimeRange, int, int, error) {
	startStr := params.DayWindowStart
	if startStr == "" {
		startStr = u.cfg.DayWindowStart
	}
	endStr := params.DayWindowEnd
	if endStr == "" {
		endStr = u.cfg.DayWindowEnd
	}
	bounds, err := schedule.ParseTimeRange(startStr, endStr)
	if err != nil {
		return schedule.TimeRange{}, 0, 0, errs.Mark(err, errs.ErrInvalidRange)
	}
	searchDays := params.SearchDays
	if searchDays <= 0 {
		searchDays = u.cfg.SearchDays
	}
	step := u.cfg.SlotStepMinutes
	if step <= 0 {
		step = 60
	}
	return bounds, searchDays, step, nil
}

func (u *matchUseCaseImpl) probeAll(ctx context.Context, r *run) []string {
	type probe struct {
		id  string
		err error
	}
	results := make([]probe, len(r.ids))
	var wg sync.WaitGroup
	for i, id := range r.ids {
		wg.Add(1)
		go func(i int, client ParticipantClient) {
			defer wg.Done()
			pctx, cancel := context.WithTimeout(ctx, u.cfg.ProbeTimeout)
			defer cancel()
			results[i] = probe{id: client.ID(), err: client.Ping(pctx)}
		}(i, r.clients[id])
	}
	wg.Wait()

	var offline []string
	for _, p := range results {
		if p.err != nil {
			offline = append(offline, p.id)
		}
	}
	return offline
}

func (u *matchUseCaseImpl) fetchDiaries(ctx context.Context, r *run) (map[string]schedule.Diary, []string) {
	type fetched struct {
		id    string
		diary schedule.Diary
		err   error
	}
	results := make([]fetched, len(r.ids))
	var wg sync.WaitGroup
	for i, id := range r.ids {
		wg.Add(1)
		go func(i int, client ParticipantClient) {
			defer wg.Done()
			fctx, cancel := context.WithTimeout(ctx, u.cfg.CallTimeout)
			defer cancel()
			diary, err := client.FetchDiary(fctx)
			results[i] = fetched{id: client.ID(), diary: diary, err: err}
		}(i, r.clients[id])
	}
	wg.Wait()

	diaries := make(map[string]schedule.Diary, len(r.ids))
	var failed []string
	for _, f := range results {
		if f.err != nil {
			failed = append(failed, f.id)
			r.outcomes[f.id].Booking = BookingFailed
			u.logger.Warn("diary fetch failed", "run_id", r.id, "participant", f.id, "error", f.err)
			continue
		}
		diaries[f.id] = f.diary
	}
	return diaries, failed
}

func (u *matchUseCaseImpl) commit(ctx context.Context, r *run, slot match.Slot, label string) *MatchResult {
	var committed []string
	for _, id := range r.ids {
		bctx, cancel := context.WithTimeout(ctx, u.cfg.CallTimeout)
		err := r.clients[id].Book(bctx, slot.Date, slot.Range, label)
		cancel()
		if err != nil {
			r.outcomes[id].Booking = BookingFailed
			u.logger.Warn("booking failed",
				"run_id", r.id, "participant", id, "slot", slot.String(), "error", err,
				"conflict", errs.Is(err, errs.ErrSlotTaken))

			if len(committed) > 0 {
				u.compensate(ctx, r, committed, slot)
			}
			r.to(statePartiallyFailed)
			reason := ""
			if ctx.Err() != nil {
				reason = ReasonTimeout
			}
			return r.result(RunPartiallyFailed, reason)
		}
		r.outcomes[id].Booking = BookingCommitted
		committed = append(committed, id)
	}

	r.to(stateCommitted)
	u.logger.Info("run committed", "run_id", r.id, "slot", slot.String(), "participants", r.ids)
	return r.result(RunCommitted, "")
}

// compensate issues best-effort cancellations to every participant that
// already committed: one attempt plus at most one bounded retry. Rollback
// runs detached from the run deadline, otherwise a timed-out run could never
// undo its own bookings. A participant stuck in compensation_failed requires
// operator reconciliation; retrying indefinitely here cannot be safe.
func (u *matchUseCaseImpl) compensate(ctx context.Context, r *run, committed []string, slot match.Slot) {
	base := context.WithoutCancel(ctx)
	for _, id := range committed {
		err := u.cancelOnce(base, r.clients[id], slot)
		if err != nil && !errs.Is(err, errs.ErrCancelUnsupported) {
			err = u.cancelOnce(base, r.clients[id], slot)
		}
		if err != nil {
			r.outcomes[id].Booking = BookingCompensationFailed
			u.logger.Error("compensation failed",
				"run_id", r.id, "participant", id, "slot", slot.String(), "error", err)
			continue
		}
		r.outcomes[id].Booking = BookingRolledBack
	}
}

func (u *matchUseCaseImpl) cancelOnce(ctx context.Context, client ParticipantClient, slot match.Slot) error {
	cctx, cancel := context.WithTimeout(ctx, u.cfg.CompensationTimeout)
	defer cancel()
	return client.Cancel(cctx, slot.Date, slot.Range)
}

func (u *matchUseCaseImpl) ResetParticipant(ctx context.Context, participantID string) (schedule.Diary, error) {
	client, ok := u.resolver.Resolve(participantID)
	if !ok {
		return nil, errs.Mark(errs.Newf("participant %q", participantID), errs.ErrUnknownParticipant)
	}
	rctx, cancel := context.WithTimeout(ctx, u.cfg.CallTimeout)
	defer cancel()
	diary, err := client.ResetDiary(rctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrParticipantUnavailable)
	}
	return diary, nil
}

// limitDays keeps only the first n dates of a diary in chronological order.
func limitDays(d schedule.Diary, n int) schedule.Diary {
	dates := d.Dates()
	if len(dates) <= n {
		return d
	}
	out := make(schedule.Diary, n)
	for _, date := range dates[:n] {
		out[date] = d[date]
	}
	return out
}
