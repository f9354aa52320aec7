package participantclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	reqdto "slotsync/internal/handler/dto/request"
	resdto "slotsync/internal/handler/dto/response"

	"slotsync/internal/domain/schedule"
	"slotsync/internal/pkg/errs"
)

// Client talks to one participant calendar service over its HTTP contract.
// Deadlines come from the caller's context; the coordinator sets one per
// call, so no transport-level timeout is layered on top.
type Client struct {
	id      string
	baseURL string
	hc      *http.Client
}

func New(id, baseURL string) *Client {
	return &Client{
		id:      id,
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
	}
}

func (c *Client) ID() string { return c.id }

func (c *Client) Ping(ctx context.Context) error {
	status, _, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return errs.Mark(errs.Newf("participant %s health returned status %d", c.id, status), errs.ErrParticipantUnavailable)
	}
	return nil
}

func (c *Client) FetchDiary(ctx context.Context) (schedule.Diary, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/diary", nil)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDiaryFetchFailed)
	}
	if status != http.StatusOK {
		return nil, errs.Mark(errs.Newf("participant %s diary returned status %d", c.id, status), errs.ErrDiaryFetchFailed)
	}
	var resp resdto.DiaryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode diary"), errs.ErrDiaryFetchFailed)
	}
	diary, err := resp.ToDiary()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDiaryFetchFailed)
	}
	return diary, nil
}

func (c *Client) Book(ctx context.Context, date schedule.Date, r schedule.TimeRange, label string) error {
	payload := reqdto.BookAppointmentRequest{
		Date:  date.String(),
		Start: r.Start().String(),
		End:   r.End().String(),
		Label: label,
	}
	status, body, err := c.do(ctx, http.MethodPost, "/book_appointment", payload)
	if err != nil {
		return err
	}

	var resp resdto.BookAppointmentResponse
	_ = json.Unmarshal(body, &resp)
	switch {
	case status == http.StatusConflict || resp.Status == resdto.BookingStatusConflict:
		return errs.ErrSlotTaken
	case status >= 200 && status < 300 && resp.Status == resdto.BookingStatusBooked:
		return nil
	}
	return errs.Mark(errs.Newf("participant %s booking returned status %d", c.id, status), errs.ErrParticipantUnavailable)
}

func (c *Client) Cancel(ctx context.Context, date schedule.Date, r schedule.TimeRange) error {
	payload := reqdto.CancelAppointmentRequest{
		Date:  date.String(),
		Start: r.Start().String(),
		End:   r.End().String(),
	}
	status, body, err := c.do(ctx, http.MethodPost, "/cancel_appointment", payload)
	if err != nil {
		return err
	}

	var resp resdto.CancelAppointmentResponse
	_ = json.Unmarshal(body, &resp)
	switch {
	case status >= 200 && status < 300 && resp.Status == resdto.CancelStatusCancelled:
		return nil
	case resp.Status == resdto.CancelStatusNotFound:
		return errs.ErrAppointmentNotFound
	case status == http.StatusNotFound:
		// No cancel route at all: this participant does not support
		// compensation.
		return errs.ErrCancelUnsupported
	}
	return errs.Mark(errs.Newf("participant %s cancel returned status %d", c.id, status), errs.ErrParticipantUnavailable)
}

func (c *Client) ResetDiary(ctx context.Context) (schedule.Diary, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/reset_diary", struct{}{})
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, errs.Mark(errs.Newf("participant %s reset returned status %d", c.id, status), errs.ErrParticipantUnavailable)
	}
	var resp resdto.DiaryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errs.Wrap(err, "decode reset diary")
	}
	return resp.ToDiary()
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, errs.Wrap(err, "encode request")
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, errs.Wrap(err, "build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, errs.Mark(fmt.Errorf("call participant %s: %w", c.id, err), errs.ErrParticipantUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, nil, errs.Mark(fmt.Errorf("read participant %s response: %w", c.id, err), errs.ErrParticipantUnavailable)
	}
	return resp.StatusCode, body, nil
}
