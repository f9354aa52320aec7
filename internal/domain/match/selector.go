package match

import (
	"context"

	"slotsync/internal/domain/schedule"
)

// Strategy ranks candidate slots by preference, highest first. A strategy
// may consult an external oracle and is allowed to fail or time out; Select
// always falls back to a deterministic choice.
type Strategy interface {
	Name() string
	Rank(ctx context.Context, candidates []Slot) ([]Slot, error)
}

// Select picks the winning slot from candidates, which must already be in
// the intersector's canonical order. The second return is false only when
// there are no candidates at all, a normal outcome rather than an error.
//
// When the strategy is nil, fails, or returns nothing, the first candidate
// in chronological order wins.
func Select(ctx context.Context, candidates []Slot, strategy Strategy) (Slot, bool) {
	if len(candidates) == 0 {
		return Slot{}, false
	}
	if strategy == nil {
		return candidates[0], true
	}
	ranked, err := strategy.Rank(ctx, candidates)
	if err != nil || len(ranked) == 0 {
		return candidates[0], true
	}
	return ranked[0], true
}

// EarliestFirst is the deterministic default: candidates are already sorted
// chronologically, so ranking is the identity.
type EarliestFirst struct{}

func (EarliestFirst) Name() string { return "earliest" }

func (EarliestFirst) Rank(_ context.Context, candidates []Slot) ([]Slot, error) {
	return candidates, nil
}

// PreferAfternoon favors windows starting in the 13:00-17:00 band, the
// sweet spot for physical activity, keeping chronological order within each
// band.
type PreferAfternoon struct{}

const (
	afternoonStart = schedule.TimeOfDay(13 * 60)
	afternoonEnd   = schedule.TimeOfDay(17 * 60)
)

func (PreferAfternoon) Name() string { return "afternoon" }

func (PreferAfternoon) Rank(_ context.Context, candidates []Slot) ([]Slot, error) {
	ranked := make([]Slot, 0, len(candidates))
	var rest []Slot
	for _, s := range candidates {
		if s.Range.Start() >= afternoonStart && s.Range.Start() < afternoonEnd {
			ranked = append(ranked, s)
		} else {
			rest = append(rest, s)
		}
	}
	return append(ranked, rest...), nil
}

// StrategyByName resolves a configured strategy name, defaulting to
// EarliestFirst for unknown names so a bad configuration degrades to the
// deterministic choice instead of failing a run.
func StrategyByName(name string) Strategy {
	switch name {
	case "afternoon":
		return PreferAfternoon{}
	default:
		return EarliestFirst{}
	}
}
