package api

import (
	"net/http"

	"slotsync/internal/domain/schedule"
	reqdto "slotsync/internal/handler/dto/request"
	resdto "slotsync/internal/handler/dto/response"
	"slotsync/internal/participant"
	"slotsync/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ParticipantHandler exposes one participant's diary over the contract the
// coordinator consumes.
type ParticipantHandler struct {
	store *participant.Store
}

func NewParticipantHandler(store *participant.Store) *ParticipantHandler {
	return &ParticipantHandler{store: store}
}

// @Summary Full diary
// @Description The participant's complete multi-day appointment schedule
// @Tags diary
// @Produce json
// @Success 200 {object} resdto.DiaryResponse
// @Router /diary [get]
func (h *ParticipantHandler) GetDiary(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromDiary(h.store.Name(), h.store.Snapshot()))
}

// @Summary Check availability
// @Description Probe one window; advisory (flexible/leisure) appointments do not block
// @Tags diary
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Window to probe"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /check_availability [post]
func (h *ParticipantHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	date, window, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or time range"})
		return
	}

	avail, err := h.store.CheckAvailability(date, window)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(avail))
}

// @Summary Book an appointment
// @Description Atomically place a booked appointment if the window is free of fixed and booked entries
// @Tags diary
// @Accept json
// @Produce json
// @Param request body reqdto.BookAppointmentRequest true "Slot to book"
// @Success 200 {object} resdto.BookAppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} resdto.BookAppointmentResponse
// @Router /book_appointment [post]
func (h *ParticipantHandler) BookAppointment(c *gin.Context) {
	var req reqdto.BookAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	date, window, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or time range"})
		return
	}

	booked, err := h.store.Book(date, window, req.Label)
	if err != nil {
		if errs.Is(err, errs.ErrSlotTaken) {
			c.JSON(http.StatusConflict, resdto.BookAppointmentResponse{
				Status: resdto.BookingStatusConflict,
			})
			return
		}
		h.writeStoreError(c, err)
		return
	}

	appt := resdto.FromAppointment(booked)
	c.JSON(http.StatusOK, resdto.BookAppointmentResponse{
		Status:      resdto.BookingStatusBooked,
		Appointment: &appt,
	})
}

// @Summary Cancel an appointment
// @Description Remove a booked appointment; the coordinator's compensation path
// @Tags diary
// @Accept json
// @Produce json
// @Param request body reqdto.CancelAppointmentRequest true "Slot to cancel"
// @Success 200 {object} resdto.CancelAppointmentResponse
// @Failure 400 {object} map[string]string
// @Router /cancel_appointment [post]
func (h *ParticipantHandler) CancelAppointment(c *gin.Context) {
	var req reqdto.CancelAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	date, window, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or time range"})
		return
	}

	if err := h.store.Cancel(date, window); err != nil {
		if errs.Is(err, errs.ErrAppointmentNotFound) || errs.Is(err, errs.ErrDateOutOfRange) {
			c.JSON(http.StatusOK, resdto.CancelAppointmentResponse{
				Status: resdto.CancelStatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.CancelAppointmentResponse{
		Status: resdto.CancelStatusCancelled,
	})
}

// @Summary Reset diary
// @Description Reinstall the default template; idempotent
// @Tags diary
// @Produce json
// @Success 200 {object} resdto.DiaryResponse
// @Router /reset_diary [post]
func (h *ParticipantHandler) ResetDiary(c *gin.Context) {
	diary := h.store.Reset()
	c.JSON(http.StatusOK, resdto.FromDiary(h.store.Name(), diary))
}

// @Summary Agent card
// @Description Capability advertisement for coordinator discovery
// @Tags discovery
// @Produce json
// @Success 200 {object} resdto.AgentCard
// @Router /.well-known/agent.json [get]
func (h *ParticipantHandler) AgentCard(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.AgentCard{
		Name:        h.store.Name(),
		Description: "Calendar service managing " + h.store.Name() + "'s appointment diary",
		Version:     "1.0.0",
		Skills: []resdto.AgentCardSkill{
			{Name: "get_diary", Method: http.MethodGet, Endpoint: "/diary"},
			{Name: "check_availability", Method: http.MethodPost, Endpoint: "/check_availability"},
			{Name: "book_appointment", Method: http.MethodPost, Endpoint: "/book_appointment"},
			{Name: "cancel_appointment", Method: http.MethodPost, Endpoint: "/cancel_appointment"},
			{Name: "reset_diary", Method: http.MethodPost, Endpoint: "/reset_diary"},
		},
	})
}

func (h *ParticipantHandler) writeStoreError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrDateOutOfRange):
		c.JSON(http.StatusNotFound, gin.H{"error": "Date not in diary range"})
	case errs.Is(err, schedule.ErrInvalidRange) || errs.Is(err, errs.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time range"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
