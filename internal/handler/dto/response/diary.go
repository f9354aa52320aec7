package response

import (
	"slotsync/internal/domain/schedule"
)

// AppointmentResponse is the wire form of one diary entry.
type AppointmentResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
}

func FromAppointment(a schedule.Appointment) AppointmentResponse {
	return AppointmentResponse{
		Start: a.Range.Start().String(),
		End:   a.Range.End().String(),
		Label: a.Label,
		Kind:  string(a.Kind),
	}
}

// DiaryResponse serializes a full diary: date mapped to the day's ordered
// appointment list.
type DiaryResponse struct {
	Participant string                           `json:"participant"`
	Days        map[string][]AppointmentResponse `json:"days"`
}

func FromDiary(participant string, d schedule.Diary) DiaryResponse {
	days := make(map[string][]AppointmentResponse, len(d))
	for _, date := range d.Dates() {
		day := make([]AppointmentResponse, 0, len(d[date]))
		for _, a := range d[date] {
			day = append(day, FromAppointment(a))
		}
		days[date.String()] = day
	}
	return DiaryResponse{Participant: participant, Days: days}
}

// ToDiary parses the wire form back into a domain diary, sorting each day.
// Fetched diaries may legally contain booked entries coexisting with the
// advisory ones they superseded, so per-day overlap is not rejected here.
func (r DiaryResponse) ToDiary() (schedule.Diary, error) {
	diary := make(schedule.Diary, len(r.Days))
	for dateStr, day := range r.Days {
		date, err := schedule.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		diary[date] = []schedule.Appointment{}
		for _, a := range day {
			tr, err := schedule.ParseTimeRange(a.Start, a.End)
			if err != nil {
				return nil, err
			}
			kind, err := schedule.ParseKind(a.Kind)
			if err != nil {
				return nil, err
			}
			diary.Insert(date, schedule.Appointment{Range: tr, Label: a.Label, Kind: kind})
		}
	}
	return diary, nil
}
