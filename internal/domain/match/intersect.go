package match

import (
	"sort"

	"slotsync/internal/pkg/errs"
)

// Intersect computes the windows free for every participant. The input maps
// participant ID to that participant's free slots; the output contains only
// slots present in all of them, sorted ascending by (date, start) so that
// downstream selection is reproducible given identical inputs.
//
// Naive set intersection: the expected scale is at most a handful of
// participants, ten-ish days, and dozens of windows per day.
func Intersect(byParticipant map[string][]Slot) ([]Slot, error) {
	if len(byParticipant) == 0 {
		return nil, errs.ErrNoParticipants
	}

	counts := make(map[Slot]int)
	for _, slots := range byParticipant {
		seen := make(map[Slot]struct{}, len(slots))
		for _, s := range slots {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			counts[s]++
		}
	}

	common := make([]Slot, 0, len(counts))
	for s, n := range counts {
		if n == len(byParticipant) {
			common = append(common, s)
		}
	}
	sort.Slice(common, func(i, j int) bool { return common[i].Less(common[j]) })
	return common, nil
}
