package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/notetakerhq/meeting-notes-api/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	meetingHandler  *Meeting
	pipelineHandler *Pipeline
	reportHandler   *Report
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, pipelineHandler *Pipeline, reportHandler *Report) *Router {
	return &Router{
		cfg:             cfg,
		meetingHandler:  meetingHandler,
		pipelineHandler: pipelineHandler,
		reportHandler:   reportHandler,
	}
}

// Setup configures all application routes. Paths are mounted at the root so
// the capture extension can keep its hardcoded endpoints.
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	// Recording payloads arrive base64-encoded in JSON, so the limit is
	// well above the raw audio size.
	ingest := e.Group("", middleware.BodyLimit("50M"))
	ingest.POST("/process-recording", rt.pipelineHandler.ProcessRecording)
	ingest.POST("/transcribe", rt.pipelineHandler.Transcribe)

	meetings := e.Group("/meetings")
	meetings.POST("", rt.meetingHandler.Create)
	meetings.GET("", rt.meetingHandler.List)
	meetings.PUT("", rt.meetingHandler.Update)
	meetings.DELETE("", rt.meetingHandler.Delete)

	meeting := e.Group("/meeting")
	meeting.GET("/:id", rt.meetingHandler.GetComplete)
	meeting.GET("/:id/export", rt.reportHandler.Export)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	environment := "development"
	if rt.cfg != nil {
		environment = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": environment,
	})
}
