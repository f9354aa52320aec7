package response

import (
	"slotsync/internal/usecase/commands"
	"slotsync/internal/usecase/queries"
)

type SelectedSlotResponse struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type MatchParticipantResponse struct {
	FreeSlots     int    `json:"free_slots"`
	BookingStatus string `json:"booking_status"`
}

type MatchResponse struct {
	RunID           string                              `json:"run_id"`
	Status          string                              `json:"status"`
	Reason          string                              `json:"reason,omitempty"`
	SelectedSlot    *SelectedSlotResponse               `json:"selected_slot,omitempty"`
	CandidatesFound int                                 `json:"candidates_found"`
	Participants    map[string]MatchParticipantResponse `json:"participants"`
	Transitions     []string                            `json:"transitions"`
}

func FromMatchResult(r *commands.MatchResult) MatchResponse {
	resp := MatchResponse{
		RunID:           r.RunID.String(),
		Status:          string(r.Status),
		Reason:          r.Reason,
		CandidatesFound: r.CandidatesFound,
		Participants:    make(map[string]MatchParticipantResponse, len(r.Participants)),
		Transitions:     r.Transitions,
	}
	if r.SelectedSlot != nil {
		resp.SelectedSlot = &SelectedSlotResponse{
			Date:  r.SelectedSlot.Date.String(),
			Start: r.SelectedSlot.Range.Start().String(),
			End:   r.SelectedSlot.Range.End().String(),
		}
	}
	for id, outcome := range r.Participants {
		resp.Participants[id] = MatchParticipantResponse{
			FreeSlots:     outcome.FreeSlots,
			BookingStatus: string(outcome.Booking),
		}
	}
	return resp
}

type ParticipantStatusResponse struct {
	ID     string `json:"id"`
	Online bool   `json:"online"`
}

func FromParticipantStatus(views []queries.ParticipantStatusView) []ParticipantStatusResponse {
	out := make([]ParticipantStatusResponse, len(views))
	for i, v := range views {
		out[i] = ParticipantStatusResponse{ID: v.ID, Online: v.Online}
	}
	return out
}
