package match

import (
	"slotsync/internal/domain/schedule"
)

// Slot is a candidate window on a specific date. During a coordination run a
// Slot that survives intersection is confirmed free for every participant;
// the winning Slot becomes a booked appointment in each diary on commit.
type Slot struct {
	Date  schedule.Date
	Range schedule.TimeRange
}

func (s Slot) String() string {
	return s.Date.String() + " " + s.Range.String()
}

// Less orders slots ascending by (date, start, end), the canonical order the
// intersector emits and the selector's fallback relies on.
func (s Slot) Less(other Slot) bool {
	if s.Date != other.Date {
		return s.Date < other.Date
	}
	if s.Range.Start() != other.Range.Start() {
		return s.Range.Start() < other.Range.Start()
	}
	return s.Range.End() < other.Range.End()
}
