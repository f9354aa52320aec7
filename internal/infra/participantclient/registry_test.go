//go:build unit

package participantclient_test

import (
	"io"
	"log/slog"
	"testing"

	"slotsync/internal/infra/participantclient"
	"slotsync/internal/pkg/config"
	"slotsync/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T, participants []string) (*participantclient.Registry, error) {
	t.Helper()
	cfg := config.NewTestConfig()
	cfg.Coordinator.Participants = participants
	return participantclient.NewRegistry(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewRegistry(t *testing.T) {
	t.Run("preserves configured order", func(t *testing.T) {
		r, err := newRegistry(t, []string{
			"joy=http://localhost:8002",
			"bean=http://localhost:8001",
			"anna=http://localhost:8003",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"joy", "bean", "anna"}, r.IDs())
	})

	t.Run("tolerates surrounding whitespace", func(t *testing.T) {
		r, err := newRegistry(t, []string{" bean=http://localhost:8001 "})
		require.NoError(t, err)
		assert.Equal(t, []string{"bean"}, r.IDs())
	})

	t.Run("resolves known and rejects unknown", func(t *testing.T) {
		r, err := newRegistry(t, []string{"bean=http://localhost:8001"})
		require.NoError(t, err)

		c, ok := r.Resolve("bean")
		require.True(t, ok)
		assert.Equal(t, "bean", c.ID())

		_, ok = r.Resolve("nobody")
		assert.False(t, ok)
	})

	t.Run("malformed entries", func(t *testing.T) {
		for _, entry := range []string{"bean", "bean=", "=http://localhost:8001"} {
			_, err := newRegistry(t, []string{entry})
			assert.Error(t, err, "entry %q", entry)
		}
	})

	t.Run("duplicate participant", func(t *testing.T) {
		_, err := newRegistry(t, []string{
			"bean=http://localhost:8001",
			"bean=http://localhost:8005",
		})
		assert.Error(t, err)
	})

	t.Run("empty configuration", func(t *testing.T) {
		_, err := newRegistry(t, nil)
		assert.ErrorIs(t, err, errs.ErrNoParticipants)
	})
}
