package handler

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/notetakerhq/meeting-notes-api/errors"
	pipelinedto "github.com/notetakerhq/meeting-notes-api/internal/adapter/dto/pipeline"
	pipelineusecase "github.com/notetakerhq/meeting-notes-api/internal/usecase/pipeline"
	"github.com/notetakerhq/meeting-notes-api/internal/usecase/transcribe"
)

// pipelineRunner runs one recording through all pipeline stages
type pipelineRunner interface {
	Run(ctx context.Context, in pipelineusecase.Input) (*pipelineusecase.Output, error)
}

// transcriber serves the transcription-only endpoint
type transcriber interface {
	Transcribe(ctx context.Context, audio []byte, lang transcribe.Language) transcribe.Result
}

// Pipeline handles the recording ingestion endpoints
type Pipeline struct {
	runner      pipelineRunner
	transcriber transcriber
	logger      *zap.Logger
}

// NewPipeline creates a pipeline handler
func NewPipeline(runner pipelineRunner, transcriber transcriber, logger *zap.Logger) *Pipeline {
	return &Pipeline{runner: runner, transcriber: transcriber, logger: logger}
}

// ProcessRecording handles POST /process-recording
func (h *Pipeline) ProcessRecording(c echo.Context) error {
	var req pipelinedto.ProcessRecordingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	in := pipelineusecase.Input{
		Title:           req.Title,
		Description:     req.Description,
		DurationSeconds: req.DurationSeconds,
		MeetingURL:      req.MeetingURL,
		Platform:        req.Platform,
		Language:        transcribe.ParseLanguage(req.Language),
		Format:          req.Format,
		AudioData:       req.AudioData,
	}
	if req.StartTime != nil {
		in.StartTime = *req.StartTime
	}
	if req.UserID != nil {
		userID, err := uuid.Parse(*req.UserID)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid user_id"))
		}
		in.UserID = &userID
	}
	for _, p := range req.Participants {
		in.Participants = append(in.Participants, pipelineusecase.ParticipantInput{
			Name:  p.Name,
			Email: p.Email,
			Role:  p.Role,
		})
	}

	out, err := h.runner.Run(c.Request().Context(), in)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, out)
}

// Transcribe handles POST /transcribe
func (h *Pipeline) Transcribe(c echo.Context) error {
	var req pipelinedto.TranscribeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	audio, err := base64.StdEncoding.DecodeString(strings.TrimSpace(req.AudioData))
	if err != nil || len(audio) == 0 {
		return HandleError(h.logger, c, errors.ErrMissingAudioData())
	}

	result := h.transcriber.Transcribe(c.Request().Context(), audio, transcribe.ParseLanguage(req.Language))

	return HandleSuccess(h.logger, c, result)
}
