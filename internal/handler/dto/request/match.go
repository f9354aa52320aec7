package request

import (
	"slotsync/internal/usecase/commands"
)

// ScheduleMatchRequest triggers one coordination run. Day window, search
// range, and strategy fall back to the coordinator's configured defaults
// when omitted.
type ScheduleMatchRequest struct {
	ParticipantIDs  []string `json:"participant_ids" binding:"required,min=1"`
	DurationMinutes int      `json:"duration_minutes" binding:"required,min=1"`
	DayWindowStart  string   `json:"day_window_start,omitempty"`
	DayWindowEnd    string   `json:"day_window_end,omitempty"`
	SearchDays      int      `json:"search_days,omitempty"`
	Strategy        string   `json:"strategy,omitempty"`
	Label           string   `json:"label,omitempty"`
}

func (r ScheduleMatchRequest) ToParams() commands.ScheduleMatchParams {
	return commands.ScheduleMatchParams{
		ParticipantIDs:  r.ParticipantIDs,
		DurationMinutes: r.DurationMinutes,
		DayWindowStart:  r.DayWindowStart,
		DayWindowEnd:    r.DayWindowEnd,
		SearchDays:      r.SearchDays,
		Strategy:        r.Strategy,
		Label:           r.Label,
	}
}
