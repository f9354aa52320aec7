package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"slotsync/internal/handler/api"
	"slotsync/internal/handler/middleware"
	"slotsync/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// NewCoordinatorRouter mounts the coordination API.
func NewCoordinatorRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, matchHandler *api.MatchHandler) {
	setupMiddleware(engine, cfg, logger)

	engine.GET("/health", healthCheck)
	mountSwagger(engine)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/matches", Handler: matchHandler.ScheduleMatch},
			{Method: http.MethodGet, Path: "/participants/status", Handler: matchHandler.ParticipantStatus},
			{Method: http.MethodPost, Path: "/participants/:id/reset", Handler: matchHandler.ResetParticipant},
		})
	}
}

// NewParticipantRouter mounts one calendar service's diary contract.
func NewParticipantRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, participantHandler *api.ParticipantHandler) {
	setupMiddleware(engine, cfg, logger)

	engine.GET("/health", healthCheck)
	mountSwagger(engine)

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/diary", Handler: participantHandler.GetDiary},
		{Method: http.MethodPost, Path: "/check_availability", Handler: participantHandler.CheckAvailability},
		{Method: http.MethodPost, Path: "/book_appointment", Handler: participantHandler.BookAppointment},
		{Method: http.MethodPost, Path: "/cancel_appointment", Handler: participantHandler.CancelAppointment},
		{Method: http.MethodPost, Path: "/reset_diary", Handler: participantHandler.ResetDiary},
		{Method: http.MethodGet, Path: "/.well-known/agent.json", Handler: participantHandler.AgentCard},
	})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func mountSwagger(engine *gin.Engine) {
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
