package request

import (
	"slotsync/internal/domain/schedule"
)

// CheckAvailabilityRequest probes one window of the participant's day.
type CheckAvailabilityRequest struct {
	Date  string `json:"date" binding:"required"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
	Label string `json:"label,omitempty"`
}

func (r CheckAvailabilityRequest) ToDomain() (schedule.Date, schedule.TimeRange, error) {
	return parseDateRange(r.Date, r.Start, r.End)
}

type BookAppointmentRequest struct {
	Date  string `json:"date" binding:"required"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
	Label string `json:"label" binding:"required"`
}

func (r BookAppointmentRequest) ToDomain() (schedule.Date, schedule.TimeRange, error) {
	return parseDateRange(r.Date, r.Start, r.End)
}

type CancelAppointmentRequest struct {
	Date  string `json:"date" binding:"required"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

func (r CancelAppointmentRequest) ToDomain() (schedule.Date, schedule.TimeRange, error) {
	return parseDateRange(r.Date, r.Start, r.End)
}

func parseDateRange(date, start, end string) (schedule.Date, schedule.TimeRange, error) {
	d, err := schedule.ParseDate(date)
	if err != nil {
		return "", schedule.TimeRange{}, err
	}
	tr, err := schedule.ParseTimeRange(start, end)
	if err != nil {
		return "", schedule.TimeRange{}, err
	}
	return d, tr, nil
}
