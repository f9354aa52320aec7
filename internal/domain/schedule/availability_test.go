//go:build unit

package schedule_test

import (
	"testing"

	"slotsync/internal/domain/schedule"
	"slotsync/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayBounds(t *testing.T) schedule.TimeRange {
	t.Helper()
	return builder.MustRange("08:00", "19:00")
}

func TestCheckWindow(t *testing.T) {
	day := []schedule.Appointment{
		schedule.NewAppointment(builder.MustRange("09:00", "10:00"), "Walk", schedule.KindLeisure),
		schedule.NewAppointment(builder.MustRange("10:00", "12:00"), "Office", schedule.KindFixed),
		schedule.NewAppointment(builder.MustRange("14:00", "15:00"), "Errands", schedule.KindFlexible),
	}

	t.Run("free window", func(t *testing.T) {
		avail, err := schedule.CheckWindow(day, dayBounds(t), builder.MustRange("15:00", "17:00"))
		require.NoError(t, err)
		assert.True(t, avail.Free)
		assert.Nil(t, avail.Conflict)
	})

	t.Run("fixed appointment blocks", func(t *testing.T) {
		avail, err := schedule.CheckWindow(day, dayBounds(t), builder.MustRange("11:00", "13:00"))
		require.NoError(t, err)
		assert.False(t, avail.Free)
		require.NotNil(t, avail.Conflict)
		assert.Equal(t, "Office", avail.Conflict.Label)
	})

	t.Run("advisory appointments do not block", func(t *testing.T) {
		avail, err := schedule.CheckWindow(day, dayBounds(t), builder.MustRange("13:00", "15:00"))
		require.NoError(t, err)
		assert.True(t, avail.Free, "flexible entry is advisory")

		avail, err = schedule.CheckWindow(day, dayBounds(t), builder.MustRange("08:30", "09:30"))
		require.NoError(t, err)
		assert.True(t, avail.Free, "leisure entry is advisory")
	})

	t.Run("booked appointment blocks", func(t *testing.T) {
		booked := append(append([]schedule.Appointment(nil), day...),
			schedule.NewAppointment(builder.MustRange("15:00", "17:00"), "Match", schedule.KindBooked))
		schedule.SortDay(booked)

		avail, err := schedule.CheckWindow(booked, dayBounds(t), builder.MustRange("16:00", "18:00"))
		require.NoError(t, err)
		assert.False(t, avail.Free)
	})

	t.Run("window past day bounds is not free", func(t *testing.T) {
		avail, err := schedule.CheckWindow(day, dayBounds(t), builder.MustRange("18:00", "20:00"))
		require.NoError(t, err)
		assert.False(t, avail.Free)
		assert.Nil(t, avail.Conflict)
	})

	t.Run("window ending exactly at the bound is allowed", func(t *testing.T) {
		avail, err := schedule.CheckWindow(day, dayBounds(t), builder.MustRange("17:00", "19:00"))
		require.NoError(t, err)
		assert.True(t, avail.Free)
	})

	t.Run("degenerate window is a caller error", func(t *testing.T) {
		bad := schedule.TimeRange{}
		_, err := schedule.CheckWindow(day, dayBounds(t), bad)
		assert.ErrorIs(t, err, schedule.ErrInvalidRange)
	})

	t.Run("empty day is free everywhere inside bounds", func(t *testing.T) {
		avail, err := schedule.CheckWindow(nil, dayBounds(t), builder.MustRange("08:00", "10:00"))
		require.NoError(t, err)
		assert.True(t, avail.Free)
	})
}

func TestSlideWindows(t *testing.T) {
	t.Run("hourly two-hour windows across the day", func(t *testing.T) {
		windows := schedule.SlideWindows(dayBounds(t), 120, 60)
		require.Len(t, windows, 10)
		assert.Equal(t, "08:00-10:00", windows[0].String())
		assert.Equal(t, "17:00-19:00", windows[9].String(), "flush against the end bound is included")
	})

	t.Run("duration exceeding bounds yields nothing", func(t *testing.T) {
		assert.Empty(t, schedule.SlideWindows(dayBounds(t), 12*60, 60))
	})

	t.Run("non-positive inputs yield nothing", func(t *testing.T) {
		assert.Empty(t, schedule.SlideWindows(dayBounds(t), 0, 60))
		assert.Empty(t, schedule.SlideWindows(dayBounds(t), 60, 0))
	})
}

func TestFreeWindows(t *testing.T) {
	t.Run("fixed office block splits the day", func(t *testing.T) {
		diary := builder.NewDiaryBuilder().
			WithAppointment("2026-09-01", "10:00", "12:00", "Office", schedule.KindFixed).
			MustBuild()

		free, err := schedule.FreeWindows(diary, dayBounds(t), 120, 60)
		require.NoError(t, err)

		windows := free[builder.MustDate("2026-09-01")]
		got := make([]string, len(windows))
		for i, w := range windows {
			got[i] = w.String()
		}
		want := []string{
			"08:00-10:00",
			"12:00-14:00", "13:00-15:00", "14:00-16:00",
			"15:00-17:00", "16:00-18:00", "17:00-19:00",
		}
		assert.Equal(t, want, got)
	})

	t.Run("advisory-only day is fully free", func(t *testing.T) {
		diary := builder.NewDiaryBuilder().
			WithAppointment("2026-09-01", "09:00", "17:00", "Reading", schedule.KindLeisure).
			MustBuild()

		free, err := schedule.FreeWindows(diary, dayBounds(t), 120, 60)
		require.NoError(t, err)
		assert.Len(t, free[builder.MustDate("2026-09-01")], 10)
	})

	t.Run("fully blocked day yields no windows", func(t *testing.T) {
		diary := builder.NewDiaryBuilder().
			WithAppointment("2026-09-01", "08:00", "19:00", "Conference", schedule.KindFixed).
			MustBuild()

		free, err := schedule.FreeWindows(diary, dayBounds(t), 120, 60)
		require.NoError(t, err)
		assert.Empty(t, free[builder.MustDate("2026-09-01")])
	})

	t.Run("invalid duration", func(t *testing.T) {
		diary := builder.NewDiaryBuilder().WithDay("2026-09-01").MustBuild()
		_, err := schedule.FreeWindows(diary, dayBounds(t), 0, 60)
		assert.ErrorIs(t, err, schedule.ErrInvalidRange)
	})
}
