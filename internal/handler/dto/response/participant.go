package response

import (
	"slotsync/internal/domain/schedule"
)

const (
	BookingStatusBooked   = "booked"
	BookingStatusConflict = "conflict"

	CancelStatusCancelled = "cancelled"
	CancelStatusNotFound  = "not_found"
)

type AvailabilityResponse struct {
	Free     bool                 `json:"free"`
	Conflict *AppointmentResponse `json:"conflict,omitempty"`
}

func FromAvailability(a schedule.Availability) AvailabilityResponse {
	resp := AvailabilityResponse{Free: a.Free}
	if a.Conflict != nil {
		conflict := FromAppointment(*a.Conflict)
		resp.Conflict = &conflict
	}
	return resp
}

type BookAppointmentResponse struct {
	Status      string               `json:"status"`
	Appointment *AppointmentResponse `json:"appointment,omitempty"`
}

type CancelAppointmentResponse struct {
	Status string `json:"status"`
}

// AgentCard is the participant's capability advertisement served under
// /.well-known/agent.json: a stable address plus the operation contracts a
// coordinator needs.
type AgentCard struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Version     string           `json:"version"`
	Skills      []AgentCardSkill `json:"skills"`
}

type AgentCardSkill struct {
	Name     string `json:"name"`
	Method   string `json:"method"`
	Endpoint string `json:"endpoint"`
}
