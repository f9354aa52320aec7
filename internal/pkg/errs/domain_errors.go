package errs

import "errors"

// Sentinel errors shared between the coordinator and participant layers.
var (
	// Caller errors, rejected before any I/O
	ErrInvalidRange       = errors.New("invalid time range")
	ErrUnknownParticipant = errors.New("unknown participant")
	ErrNoParticipants     = errors.New("no participants")

	// Participant transport errors
	ErrParticipantUnavailable = errors.New("participant unavailable")
	ErrDiaryFetchFailed       = errors.New("diary fetch failed")

	// Booking errors
	ErrSlotTaken           = errors.New("slot already taken")
	ErrDateOutOfRange      = errors.New("date outside diary range")
	ErrAppointmentNotFound = errors.New("appointment not found")

	// Compensation errors
	ErrCancelUnsupported  = errors.New("cancellation unsupported")
	ErrCompensationFailed = errors.New("compensation failed")
)
