package api

import (
	"net/http"

	reqdto "slotsync/internal/handler/dto/request"
	resdto "slotsync/internal/handler/dto/response"
	"slotsync/internal/pkg/errs"
	"slotsync/internal/usecase/commands"
	"slotsync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchCommands commands.MatchCommands
	statusQueries queries.StatusQueries
}

func NewMatchHandler(matchCommands commands.MatchCommands, statusQueries queries.StatusQueries) *MatchHandler {
	return &MatchHandler{
		matchCommands: matchCommands,
		statusQueries: statusQueries,
	}
}

// @Summary Schedule a match
// @Description Run one coordination attempt: probe participants, intersect availability, book the winning slot everywhere
// @Tags matches
// @Accept json
// @Produce json
// @Param request body reqdto.ScheduleMatchRequest true "Match request"
// @Success 200 {object} resdto.MatchResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/matches [post]
func (h *MatchHandler) ScheduleMatch(c *gin.Context) {
	var req reqdto.ScheduleMatchRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.matchCommands.ScheduleMatch(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid duration or day window",
			})
		case errs.Is(err, errs.ErrNoParticipants):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "At least one participant is required",
			})
		case errs.Is(err, errs.ErrUnknownParticipant):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unknown participant",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMatchResult(result))
}

// @Summary Participant status
// @Description Liveness of every configured participant
// @Tags participants
// @Produce json
// @Success 200 {array} resdto.ParticipantStatusResponse
// @Router /api/participants/status [get]
func (h *MatchHandler) ParticipantStatus(c *gin.Context) {
	views := h.statusQueries.ParticipantStatus(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromParticipantStatus(views))
}

// @Summary Reset a participant diary
// @Description Ask one participant to reinstall its default diary template
// @Tags participants
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} resdto.DiaryResponse
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/participants/{id}/reset [post]
func (h *MatchHandler) ResetParticipant(c *gin.Context) {
	id := c.Param("id")

	diary, err := h.matchCommands.ResetParticipant(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrUnknownParticipant):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unknown participant",
			})
		case errs.Is(err, errs.ErrParticipantUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Participant unreachable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiary(id, diary))
}
