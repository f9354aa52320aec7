//go:build unit

package match_test

import (
	"testing"

	"slotsync/internal/domain/match"
	"slotsync/internal/domain/schedule"
	"slotsync/internal/pkg/errs"
	"slotsync/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(date, start, end string) match.Slot {
	return match.Slot{Date: builder.MustDate(date), Range: builder.MustRange(start, end)}
}

func TestIntersect(t *testing.T) {
	t.Run("keeps only slots free for everyone", func(t *testing.T) {
		common, err := match.Intersect(map[string][]match.Slot{
			"bean": {
				slot("2026-09-01", "08:00", "10:00"),
				slot("2026-09-01", "14:00", "16:00"),
				slot("2026-09-02", "09:00", "11:00"),
			},
			"joy": {
				slot("2026-09-01", "14:00", "16:00"),
				slot("2026-09-02", "09:00", "11:00"),
				slot("2026-09-02", "15:00", "17:00"),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []match.Slot{
			slot("2026-09-01", "14:00", "16:00"),
			slot("2026-09-02", "09:00", "11:00"),
		}, common)
	})

	t.Run("sorted by date then start", func(t *testing.T) {
		common, err := match.Intersect(map[string][]match.Slot{
			"solo": {
				slot("2026-09-02", "08:00", "10:00"),
				slot("2026-09-01", "14:00", "16:00"),
				slot("2026-09-01", "08:00", "10:00"),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []match.Slot{
			slot("2026-09-01", "08:00", "10:00"),
			slot("2026-09-01", "14:00", "16:00"),
			slot("2026-09-02", "08:00", "10:00"),
		}, common)
	})

	t.Run("order of map keys does not change the outcome", func(t *testing.T) {
		a := map[string][]match.Slot{
			"bean": {slot("2026-09-01", "14:00", "16:00"), slot("2026-09-01", "08:00", "10:00")},
			"joy":  {slot("2026-09-01", "14:00", "16:00")},
			"anna": {slot("2026-09-01", "14:00", "16:00"), slot("2026-09-02", "09:00", "11:00")},
		}
		b := map[string][]match.Slot{
			"anna": a["anna"],
			"joy":  a["joy"],
			"bean": a["bean"],
		}
		got1, err := match.Intersect(a)
		require.NoError(t, err)
		got2, err := match.Intersect(b)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(got1, got2, cmp.AllowUnexported(schedule.TimeRange{})))
	})

	t.Run("duplicate slots from one participant count once", func(t *testing.T) {
		common, err := match.Intersect(map[string][]match.Slot{
			"bean": {
				slot("2026-09-01", "08:00", "10:00"),
				slot("2026-09-01", "08:00", "10:00"),
			},
			"joy": {slot("2026-09-01", "14:00", "16:00")},
		})
		require.NoError(t, err)
		assert.Empty(t, common, "a doubled slot must not fake a second participant")
	})

	t.Run("single participant passes through", func(t *testing.T) {
		common, err := match.Intersect(map[string][]match.Slot{
			"bean": {slot("2026-09-01", "08:00", "10:00")},
		})
		require.NoError(t, err)
		assert.Equal(t, []match.Slot{slot("2026-09-01", "08:00", "10:00")}, common)
	})

	t.Run("disjoint availability yields empty", func(t *testing.T) {
		common, err := match.Intersect(map[string][]match.Slot{
			"bean": {slot("2026-09-01", "08:00", "10:00")},
			"joy":  {slot("2026-09-01", "14:00", "16:00")},
		})
		require.NoError(t, err)
		assert.Empty(t, common)
	})

	t.Run("no participants is an error", func(t *testing.T) {
		_, err := match.Intersect(nil)
		assert.ErrorIs(t, err, errs.ErrNoParticipants)
	})
}

func TestSlotLess(t *testing.T) {
	cases := []struct {
		name string
		a, b match.Slot
		want bool
	}{
		{name: "earlier date wins", a: slot("2026-09-01", "14:00", "16:00"), b: slot("2026-09-02", "08:00", "10:00"), want: true},
		{name: "same date earlier start wins", a: slot("2026-09-01", "08:00", "10:00"), b: slot("2026-09-01", "09:00", "11:00"), want: true},
		{name: "same start shorter end wins", a: slot("2026-09-01", "08:00", "09:00"), b: slot("2026-09-01", "08:00", "10:00"), want: true},
		{name: "equal slots", a: slot("2026-09-01", "08:00", "10:00"), b: slot("2026-09-01", "08:00", "10:00"), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Less(tc.b))
			if tc.want {
				assert.False(t, tc.b.Less(tc.a))
			}
		})
	}
}
