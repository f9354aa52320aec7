package schedule

// Availability is the outcome of probing one window against one day of a
// diary. Conflict carries the first blocking appointment found, for
// diagnostic messaging; it is nil when the window is free.
type Availability struct {
	Free     bool
	Conflict *Appointment
}

// CheckWindow decides whether the window r is bookable given one day's
// chronologically ordered appointments and the participant's day bounds.
//
// Only fixed and booked appointments block. Flexible and leisure entries are
// advisory, so the window reports free even though an appointment nominally
// occupies it; callers must expect a later diary listing to still show the
// advisory entry.
//
// A window extending past the day bounds is never free. A zero or negative
// window is a caller error, reported before any scanning.
func CheckWindow(day []Appointment, bounds TimeRange, r TimeRange) (Availability, error) {
	if r.End() <= r.Start() || !r.Start().Valid() || !r.End().Valid() {
		return Availability{}, ErrInvalidRange
	}
	if !r.Within(bounds) {
		return Availability{Free: false}, nil
	}
	for i := range day {
		a := day[i]
		if a.Range.Start() >= r.End() {
			break
		}
		if a.Kind.Blocking() && a.Range.Overlaps(r) {
			conflict := a
			return Availability{Free: false, Conflict: &conflict}, nil
		}
	}
	return Availability{Free: true}, nil
}

// SlideWindows enumerates candidate windows of the requested duration inside
// the day bounds, stepping by step minutes. The end bound is exclusive in
// the half-open sense: a window ending exactly on the bound is included.
func SlideWindows(bounds TimeRange, durationMinutes, stepMinutes int) []TimeRange {
	if durationMinutes <= 0 || stepMinutes <= 0 {
		return nil
	}
	var windows []TimeRange
	for start := bounds.Start(); ; start += TimeOfDay(stepMinutes) {
		end := start + TimeOfDay(durationMinutes)
		if end > bounds.End() {
			break
		}
		r, err := NewTimeRange(start, end)
		if err != nil {
			break
		}
		windows = append(windows, r)
	}
	return windows
}

// FreeWindows sweeps every day of a diary with SlideWindows and returns the
// windows CheckWindow reports free, keyed by date. Pure computation, no I/O.
func FreeWindows(d Diary, bounds TimeRange, durationMinutes, stepMinutes int) (map[Date][]TimeRange, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidRange
	}
	free := make(map[Date][]TimeRange, len(d))
	for date, day := range d {
		for _, w := range SlideWindows(bounds, durationMinutes, stepMinutes) {
			avail, err := CheckWindow(day, bounds, w)
			if err != nil {
				return nil, err
			}
			if avail.Free {
				free[date] = append(free[date], w)
			}
		}
	}
	return free, nil
}
