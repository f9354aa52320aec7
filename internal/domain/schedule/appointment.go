package schedule

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Kind classifies an appointment's obligation level.
type Kind string

const (
	// KindFixed appointments are never displaced or overlapped by bookings.
	KindFixed Kind = "fixed"
	// KindFlexible and KindLeisure appointments are advisory: they may be
	// rescheduled, so they do not block new bookings.
	KindFlexible Kind = "flexible"
	KindLeisure  Kind = "leisure"
	// KindBooked marks a slot committed by the coordination engine.
	KindBooked Kind = "booked"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindFixed, KindFlexible, KindLeisure, KindBooked:
		return k, nil
	}
	return "", fmt.Errorf("unknown appointment kind %q", s)
}

// Blocking reports whether an appointment of this kind prevents a new
// booking from occupying an overlapping window.
func (k Kind) Blocking() bool {
	return k == KindFixed || k == KindBooked
}

// Appointment is a single record on one participant's diary.
type Appointment struct {
	ID    uuid.UUID
	Range TimeRange
	Label string
	Kind  Kind
}

func NewAppointment(r TimeRange, label string, kind Kind) Appointment {
	return Appointment{
		ID:    uuid.New(),
		Range: r,
		Label: label,
		Kind:  kind,
	}
}

// Diary is a participant's full multi-day appointment book, keyed by date
// with each day kept in chronological order.
type Diary map[Date][]Appointment

// NewDiary validates and normalizes a day mapping into a Diary: every day is
// sorted by start time and no two appointments on the same day may overlap.
// The overlap invariant holds for freshly constructed diaries only; a later
// booking may legally coexist with the advisory entries it supersedes.
func NewDiary(days map[Date][]Appointment) (Diary, error) {
	d := make(Diary, len(days))
	for date, appts := range days {
		day := append([]Appointment(nil), appts...)
		SortDay(day)
		for i := 1; i < len(day); i++ {
			if day[i-1].Range.Overlaps(day[i].Range) {
				return nil, fmt.Errorf("diary day %s: %s overlaps %s",
					date, day[i-1].Range, day[i].Range)
			}
		}
		d[date] = day
	}
	return d, nil
}

// SortDay orders a day's appointments chronologically by start time.
func SortDay(day []Appointment) {
	sort.SliceStable(day, func(i, j int) bool {
		return day[i].Range.Start() < day[j].Range.Start()
	})
}

// Dates returns the diary's dates in ascending order.
func (d Diary) Dates() []Date {
	dates := make([]Date, 0, len(d))
	for date := range d {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })
	return dates
}

// Clone returns a deep copy, so callers can hand out snapshots without
// exposing the owned backing slices.
func (d Diary) Clone() Diary {
	out := make(Diary, len(d))
	for date, day := range d {
		out[date] = append([]Appointment(nil), day...)
	}
	return out
}

// Insert places an appointment on the given date keeping chronological
// order. It performs no conflict checking; that is the diary owner's job.
func (d Diary) Insert(date Date, a Appointment) {
	day := append(d[date], a)
	SortDay(day)
	d[date] = day
}
