package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidRange = errors.New("invalid time range")
	ErrInvalidDate  = errors.New("invalid date")
)

// TimeOfDay is a civil wall-clock time expressed as minutes since midnight.
type TimeOfDay int

const MinutesPerDay = 24 * 60

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || h*60+m > MinutesPerDay {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}
	return TimeOfDay(h*60 + m), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t <= MinutesPerDay
}

// TimeRange is a half-open window [start, end) within a single day.
type TimeRange struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeRange(start, end TimeOfDay) (TimeRange, error) {
	if !start.Valid() || !end.Valid() {
		return TimeRange{}, ErrInvalidRange
	}
	if end <= start {
		return TimeRange{}, ErrInvalidRange
	}
	return TimeRange{start: start, end: end}, nil
}

func ParseTimeRange(start, end string) (TimeRange, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeRange{}, err
	}
	return NewTimeRange(s, e)
}

func (r TimeRange) Start() TimeOfDay { return r.start }
func (r TimeRange) End() TimeOfDay   { return r.end }

func (r TimeRange) Minutes() int {
	return int(r.end - r.start)
}

func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start < other.end && other.start < r.end
}

// Within reports whether r lies entirely inside bounds. The end bound is
// exclusive in the half-open sense: a range ending exactly at the bound fits.
func (r TimeRange) Within(bounds TimeRange) bool {
	return r.start >= bounds.start && r.end <= bounds.end
}

func (r TimeRange) String() string {
	return r.start.String() + "-" + r.end.String()
}

// Date is a civil calendar date in YYYY-MM-DD form. The string representation
// sorts chronologically, so Dates compare with plain string ordering.
type Date string

const dateLayout = "2006-01-02"

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date(t.Format(dateLayout)), nil
}

func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

func (d Date) AddDays(n int) Date {
	t, _ := time.Parse(dateLayout, string(d))
	return DateOf(t.AddDate(0, 0, n))
}

func (d Date) String() string { return string(d) }
