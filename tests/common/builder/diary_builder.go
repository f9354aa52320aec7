//go:build unit

package builder

import (
	"slotsync/internal/domain/schedule"
	reqdto "slotsync/internal/handler/dto/request"

	"github.com/google/uuid"
)

// DiaryBuilder assembles a diary day by day with must-parse helpers, so
// tests read as schedules instead of parsing boilerplate.
type DiaryBuilder struct {
	days map[schedule.Date][]schedule.Appointment
}

func NewDiaryBuilder() *DiaryBuilder {
	return &DiaryBuilder{days: make(map[schedule.Date][]schedule.Appointment)}
}

// WithDay registers a date with no appointments.
func (b *DiaryBuilder) WithDay(date string) *DiaryBuilder {
	d := MustDate(date)
	if _, ok := b.days[d]; !ok {
		b.days[d] = []schedule.Appointment{}
	}
	return b
}

func (b *DiaryBuilder) WithAppointment(date, start, end, label string, kind schedule.Kind) *DiaryBuilder {
	d := MustDate(date)
	b.days[d] = append(b.days[d], schedule.Appointment{
		ID:    uuid.New(),
		Range: MustRange(start, end),
		Label: label,
		Kind:  kind,
	})
	return b
}

func (b *DiaryBuilder) Build() (schedule.Diary, error) {
	return schedule.NewDiary(b.days)
}

// MustBuild panics on an invalid layout; for tests whose fixture is known
// good.
func (b *DiaryBuilder) MustBuild() schedule.Diary {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

func MustDate(s string) schedule.Date {
	d, err := schedule.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func MustRange(start, end string) schedule.TimeRange {
	r, err := schedule.ParseTimeRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

func MustTime(s string) schedule.TimeOfDay {
	t, err := schedule.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Request DTO builders

func BookRequest(date, start, end, label string) reqdto.BookAppointmentRequest {
	return reqdto.BookAppointmentRequest{Date: date, Start: start, End: end, Label: label}
}

func CheckRequest(date, start, end string) reqdto.CheckAvailabilityRequest {
	return reqdto.CheckAvailabilityRequest{Date: date, Start: start, End: end}
}

func CancelRequest(date, start, end string) reqdto.CancelAppointmentRequest {
	return reqdto.CancelAppointmentRequest{Date: date, Start: start, End: end}
}

func MatchRequest(participants []string, durationMinutes int) reqdto.ScheduleMatchRequest {
	return reqdto.ScheduleMatchRequest{
		ParticipantIDs:  participants,
		DurationMinutes: durationMinutes,
	}
}
