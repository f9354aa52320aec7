package participant

import (
	"sync"

	"slotsync/internal/domain/schedule"
	"slotsync/internal/pkg/errs"
)

// Store owns one participant's diary. All mutation goes through the store
// under a single lock, making every booking a single atomic check-and-set
// per date: two concurrent bookings for the same window cannot both observe
// "free" and both commit.
//
// The raw diary is never handed out; callers get deep-copied snapshots.
type Store struct {
	mu       sync.Mutex
	name     string
	bounds   schedule.TimeRange
	pristine schedule.Diary
	diary    schedule.Diary
}

// NewStore seeds a store from a template, keeping the generated default
// diary so Reset can reinstall the exact same schedule every time.
func NewStore(name string, tmpl Template, start schedule.Date, days int) (*Store, error) {
	pristine, err := tmpl.Generate(start, days)
	if err != nil {
		return nil, err
	}
	return &Store{
		name:     name,
		bounds:   tmpl.Bounds,
		pristine: pristine,
		diary:    pristine.Clone(),
	}, nil
}

func (s *Store) Name() string { return s.name }

func (s *Store) Bounds() schedule.TimeRange { return s.bounds }

// Snapshot returns a deep copy of the current diary.
func (s *Store) Snapshot() schedule.Diary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.diary.Clone()
}

// CheckAvailability probes one window against the stored diary.
func (s *Store) CheckAvailability(date schedule.Date, r schedule.TimeRange) (schedule.Availability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, ok := s.diary[date]
	if !ok {
		return schedule.Availability{}, errs.ErrDateOutOfRange
	}
	return schedule.CheckWindow(day, s.bounds, r)
}

// Book places a booked appointment if the window is free of fixed and booked
// entries. Overlap with flexible or leisure appointments succeeds: advisory
// entries stay in the diary alongside the booking rather than being removed.
// Check and insert happen under one lock acquisition.
func (s *Store) Book(date schedule.Date, r schedule.TimeRange, label string) (schedule.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day, ok := s.diary[date]
	if !ok {
		return schedule.Appointment{}, errs.ErrDateOutOfRange
	}
	avail, err := schedule.CheckWindow(day, s.bounds, r)
	if err != nil {
		return schedule.Appointment{}, err
	}
	if !avail.Free {
		return schedule.Appointment{}, errs.ErrSlotTaken
	}

	booked := schedule.NewAppointment(r, label, schedule.KindBooked)
	s.diary.Insert(date, booked)
	return booked, nil
}

// Cancel removes the booked appointment covering exactly the given window.
// Only booked entries are cancellable; the compensation path never touches
// a participant's own appointments.
func (s *Store) Cancel(date schedule.Date, r schedule.TimeRange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	day, ok := s.diary[date]
	if !ok {
		return errs.ErrDateOutOfRange
	}
	for i, a := range day {
		if a.Kind == schedule.KindBooked && a.Range == r {
			s.diary[date] = append(day[:i:i], day[i+1:]...)
			return nil
		}
	}
	return errs.ErrAppointmentNotFound
}

// Reset reinstalls the default template. Idempotent: calling it twice yields
// a diary structurally equal to calling it once.
func (s *Store) Reset() schedule.Diary {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diary = s.pristine.Clone()
	return s.diary.Clone()
}
