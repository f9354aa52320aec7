//go:build unit

package participantclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	resdto "slotsync/internal/handler/dto/response"
	"slotsync/internal/infra/participantclient"
	"slotsync/internal/pkg/errs"
	"slotsync/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientPing(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		c := participantclient.New("bean", srv.URL)
		assert.NoError(t, c.Ping(context.Background()))
	})

	t.Run("unhealthy status", func(t *testing.T) {
		srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		c := participantclient.New("bean", srv.URL)
		err := c.Ping(context.Background())
		assert.True(t, errs.Is(err, errs.ErrParticipantUnavailable), "got %v", err)
	})

	t.Run("connection refused", func(t *testing.T) {
		c := participantclient.New("bean", "http://127.0.0.1:1")
		err := c.Ping(context.Background())
		assert.True(t, errs.Is(err, errs.ErrParticipantUnavailable), "got %v", err)
	})
}

func TestClientFetchDiary(t *testing.T) {
	t.Run("parses the diary", func(t *testing.T) {
		payload := resdto.DiaryResponse{
			Participant: "bean",
			Days: map[string][]resdto.AppointmentResponse{
				"2026-09-01": {
					{Start: "10:00", End: "12:00", Label: "Office", Kind: "fixed"},
				},
				"2026-09-02": {},
			},
		}
		srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/diary", r.URL.Path)
			_ = json.NewEncoder(w).Encode(payload)
		}))

		c := participantclient.New("bean", srv.URL)
		diary, err := c.FetchDiary(context.Background())
		require.NoError(t, err)

		require.Len(t, diary.Dates(), 2)
		day := diary[builder.MustDate("2026-09-01")]
		require.Len(t, day, 1)
		assert.Equal(t, "Office", day[0].Label)
		assert.Empty(t, diary[builder.MustDate("2026-09-02")])
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		c := participantclient.New("bean", srv.URL)
		_, err := c.FetchDiary(context.Background())
		assert.True(t, errs.Is(err, errs.ErrDiaryFetchFailed), "got %v", err)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		c := participantclient.New("bean", srv.URL)
		_, err := c.FetchDiary(context.Background())
		assert.True(t, errs.Is(err, errs.ErrDiaryFetchFailed), "got %v", err)
	})
}

func TestClientBook(t *testing.T) {
	date := builder.MustDate("2026-09-01")
	window := builder.MustRange("14:00", "16:00")

	t.Run("booked", func(t *testing.T) {
		srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/book_appointment", r.URL.Path)

			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "2026-09-01", req["date"])
			assert.Equal(t, "14:00", req["start"])
			assert.Equal(t, "16:00", req["end"])
			assert.Equal(t, "Badminton", req["label"])

			_ = json.NewEncoder(w).Encode(resdto.BookAppointmentResponse{Status: resdto.BookingStatusBooked})
		}))

		c := participantclient.New("bean", srv.URL)
		assert.NoError(t, c.Book(context.Background(), date, window, "Badminton"))
	})

	t.Run("conflict by status code", func(t *testing.T) {
		srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(resdto.BookAppointmentResponse{Status: resdto.BookingStatusConflict})
		}))
		c := participantclient.New("bean", srv.URL)
		assert.ErrorIs(t, c.Book(context.Background(), date, window, "Badminton"), errs.ErrSlotTaken)
	})

	t.Run("conflict by body despite 200", func(t *testing.T) {
		srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(resdto.BookAppointmentResponse{Status: resdto.BookingStatusConflict})
		}))
		c := participantclient.New("bean", srv.URL)
		assert.ErrorIs(t, c.Book(context.Background(), date, window, "Badminton"), errs.ErrSlotTaken)
	})

	t.Run("unexpected response", func(t *testing.T) {
		srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		c := participantclient.New("bean", srv.URL)
		err := c.Book(context.Background(), date, window, "Badminton")
		assert.True(t, errs.Is(err, errs.ErrParticipantUnavailable), "got %v", err)
	})
}

func TestClientCancel(t *testing.T) {
	date := builder.MustDate("2026-09-01")
	window := builder.MustRange("14:00", "16:00")

	t.Run("cancelled", func(t *testing.T) {
		srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/cancel_appointment", r.URL.Path)
			_ = json.NewEncoder(w).Encode(resdto.CancelAppointmentResponse{Status: resdto.CancelStatusCancelled})
		}))
		c := participantclient.New("bean", srv.URL)
		assert.NoError(t, c.Cancel(context.Background(), date, window))
	})

	t.Run("nothing to cancel", func(t *testing.T) {
		srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(resdto.CancelAppointmentResponse{Status: resdto.CancelStatusNotFound})
		}))
		c := participantclient.New("bean", srv.URL)
		assert.ErrorIs(t, c.Cancel(context.Background(), date, window), errs.ErrAppointmentNotFound)
	})

	t.Run("no cancel route means unsupported", func(t *testing.T) {
		srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		c := participantclient.New("bean", srv.URL)
		assert.ErrorIs(t, c.Cancel(context.Background(), date, window), errs.ErrCancelUnsupported)
	})
}

func TestClientResetDiary(t *testing.T) {
	srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reset_diary", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		_ = json.NewEncoder(w).Encode(resdto.DiaryResponse{
			Participant: "bean",
			Days:        map[string][]resdto.AppointmentResponse{"2026-09-01": {}},
		})
	}))

	c := participantclient.New("bean", srv.URL)
	diary, err := c.ResetDiary(context.Background())
	require.NoError(t, err)
	assert.Len(t, diary.Dates(), 1)
}
