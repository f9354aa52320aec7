package participant

import (
	"fmt"

	"slotsync/internal/domain/schedule"
)

// Template describes a participant's default multi-day schedule. Plans are
// deterministic in the day offset, so regenerating from the same start date
// always yields a structurally identical diary.
type Template struct {
	Name   string
	Bounds schedule.TimeRange
	plan   func(offset int) []plannedEntry
}

type plannedEntry struct {
	start, end string
	label      string
	kind       schedule.Kind
}

func entry(start, end, label string, kind schedule.Kind) plannedEntry {
	return plannedEntry{start: start, end: end, label: label, kind: kind}
}

// Generate builds the default diary covering days consecutive dates from
// start.
func (t Template) Generate(start schedule.Date, days int) (schedule.Diary, error) {
	raw := make(map[schedule.Date][]schedule.Appointment, days)
	for offset := 0; offset < days; offset++ {
		date := start.AddDays(offset)
		raw[date] = []schedule.Appointment{}
		for _, e := range t.plan(offset) {
			r, err := schedule.ParseTimeRange(e.start, e.end)
			if err != nil {
				return nil, fmt.Errorf("template %s day %d: %w", t.Name, offset, err)
			}
			raw[date] = append(raw[date], schedule.NewAppointment(r, e.label, e.kind))
		}
	}
	return schedule.NewDiary(raw)
}

// TemplateByName resolves one of the built-in default schedules.
func TemplateByName(name string, bounds schedule.TimeRange) (Template, error) {
	switch name {
	case "bean":
		return beanTemplate(bounds), nil
	case "joy":
		return joyTemplate(bounds), nil
	case "open":
		return openTemplate(bounds), nil
	}
	return Template{}, fmt.Errorf("unknown diary template %q", name)
}

// beanTemplate keeps 14:00-16:00 free every day; only the office block is
// fixed.
func beanTemplate(bounds schedule.TimeRange) Template {
	return Template{
		Name:   "bean",
		Bounds: bounds,
		plan: func(offset int) []plannedEntry {
			day := []plannedEntry{
				entry("08:00", "09:00", "Breakfast with Teddy", schedule.KindFlexible),
				entry("10:00", "12:00", "Work at the office", schedule.KindFixed),
				entry("12:00", "13:00", "Lunch break", schedule.KindFlexible),
				entry("16:00", "17:00", "Tea time", schedule.KindFlexible),
				entry("17:00", "18:00", "Hobbies and TV", schedule.KindLeisure),
				entry("18:00", "19:00", "Dinner preparation", schedule.KindFlexible),
			}
			if offset%5 == 0 {
				day = append(day,
					entry("09:00", "09:30", "Check emails", schedule.KindLeisure),
					entry("09:30", "10:00", "Morning walk in the park", schedule.KindLeisure))
			} else {
				day = append(day, entry("09:00", "10:00", "Morning walk in the park", schedule.KindLeisure))
			}
			if offset%3 == 0 {
				day = append(day, entry("13:00", "14:00", "Lunch with friends", schedule.KindFlexible))
			} else {
				day = append(day, entry("13:00", "14:00", "Quick errands", schedule.KindLeisure))
			}
			return day
		},
	}
}

func joyTemplate(bounds schedule.TimeRange) Template {
	return Template{
		Name:   "joy",
		Bounds: bounds,
		plan: func(offset int) []plannedEntry {
			day := []plannedEntry{
				entry("08:00", "09:00", "Morning yoga and meditation", schedule.KindLeisure),
				entry("09:00", "10:00", "Breakfast", schedule.KindFlexible),
				entry("10:00", "12:00", "Client meetings", schedule.KindFixed),
				entry("12:00", "13:00", "Lunch and rest", schedule.KindFlexible),
				entry("15:00", "16:00", "Coffee break", schedule.KindFlexible),
				entry("18:00", "19:00", "Dinner time", schedule.KindFlexible),
			}
			if offset%4 == 0 && offset > 0 {
				day = append(day, entry("13:00", "15:00", "Business workshop", schedule.KindFixed))
			} else {
				day = append(day, entry("13:00", "15:00", "Gym workout", schedule.KindLeisure))
			}
			if offset%6 == 0 && offset > 0 {
				day = append(day, entry("16:00", "18:00", "Family gathering", schedule.KindFixed))
			} else {
				day = append(day, entry("16:00", "18:00", "Reading and relaxation", schedule.KindLeisure))
			}
			return day
		},
	}
}

// openTemplate has no appointments at all, useful for demos and tests.
func openTemplate(bounds schedule.TimeRange) Template {
	return Template{
		Name:   "open",
		Bounds: bounds,
		plan:   func(int) []plannedEntry { return nil },
	}
}
