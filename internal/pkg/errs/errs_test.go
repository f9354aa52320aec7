//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"slotsync/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	t.Run("sees marks the standard library cannot", func(t *testing.T) {
		marked := errs.Mark(errs.Newf("duration %d minutes", 0), errs.ErrInvalidRange)

		// Marks attach the sentinel out of band, so callers must match
		// through errs.Is, not errors.Is.
		assert.True(t, errs.Is(marked, errs.ErrInvalidRange))
		assert.False(t, errors.Is(marked, errs.ErrInvalidRange))
	})

	t.Run("still follows plain wrap chains", func(t *testing.T) {
		wrapped := fmt.Errorf("outer: %w", errs.ErrSlotTaken)
		assert.True(t, errs.Is(wrapped, errs.ErrSlotTaken))

		wrapped = errs.Wrap(errs.ErrSlotTaken, "outer")
		assert.True(t, errs.Is(wrapped, errs.ErrSlotTaken))
	})

	t.Run("bare sentinel matches itself", func(t *testing.T) {
		assert.True(t, errs.Is(errs.ErrUnknownParticipant, errs.ErrUnknownParticipant))
		assert.False(t, errs.Is(errs.ErrUnknownParticipant, errs.ErrSlotTaken))
	})

	t.Run("nil never matches", func(t *testing.T) {
		assert.False(t, errs.Is(nil, errs.ErrInvalidRange))
	})
}

func TestMark(t *testing.T) {
	t.Run("nil error collapses to the sentinel", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrInvalidRange)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidRange))
	})

	t.Run("keeps the original message", func(t *testing.T) {
		marked := errs.Mark(errs.New("participant \"nobody\""), errs.ErrUnknownParticipant)
		assert.Contains(t, marked.Error(), "nobody")
	})
}
