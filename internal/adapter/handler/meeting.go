package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/notetakerhq/meeting-notes-api/errors"
	meetingdto "github.com/notetakerhq/meeting-notes-api/internal/adapter/dto/meeting"
	"github.com/notetakerhq/meeting-notes-api/internal/domain/entities"
	meetingusecase "github.com/notetakerhq/meeting-notes-api/internal/usecase/meeting"
	"github.com/notetakerhq/meeting-notes-api/pkg/config"
)

// meetingService is the usecase surface the meeting handler depends on
type meetingService interface {
	Create(ctx context.Context, in meetingusecase.CreateInput) (*entities.Meeting, error)
	List(ctx context.Context, userID *uuid.UUID, limit int) ([]*entities.Meeting, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*entities.Meeting, error)
	Archive(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
	ArchiveAll(ctx context.Context) (int64, error)
	GetComplete(ctx context.Context, id uuid.UUID) (*meetingusecase.Aggregate, error)
}

// Meeting handles meeting CRUD endpoints
type Meeting struct {
	svc    meetingService
	cfg    *config.Config
	logger *zap.Logger
}

// NewMeeting creates a meeting handler
func NewMeeting(svc meetingService, cfg *config.Config, logger *zap.Logger) *Meeting {
	return &Meeting{svc: svc, cfg: cfg, logger: logger}
}

// Create handles POST /meetings
func (h *Meeting) Create(c echo.Context) error {
	var req meetingdto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	in := meetingusecase.CreateInput{
		Title:           req.Title,
		Description:     req.Description,
		EndTime:         req.EndTime,
		DurationSeconds: req.DurationSeconds,
		MeetingURL:      req.MeetingURL,
		Platform:        req.Platform,
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
		in.Participants = append(in.Participants, meetingusecase.ParticipantInput{
			Name:  p.Name,
			Email: p.Email,
			Role:  p.Role,
		})
	}

	m, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, m)
}

// List handles GET /meetings
func (h *Meeting) List(c echo.Context) error {
	var req meetingdto.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	var userID *uuid.UUID
	if req.UserID != nil {
		parsed, err := uuid.Parse(*req.UserID)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid user_id"))
		}
		userID = &parsed
	}

	meetings, err := h.svc.List(c.Request().Context(), userID, req.Limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingdto.MeetingListResponse{
		Meetings: meetings,
		Total:    len(meetings),
	})
}

// GetComplete handles GET /meeting/:id
func (h *Meeting) GetComplete(c echo.Context) error {
	id, err := parseMeetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	agg, err := h.svc.GetComplete(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	if agg == nil {
		return HandleError(h.logger, c, errors.ErrMeetingNotFound(id.String()))
	}

	return HandleSuccess(h.logger, c, agg)
}

// Update handles PUT /meetings?id=
func (h *Meeting) Update(c echo.Context) error {
	id, err := parseMeetingIDQuery(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.UpdateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("no fields to update"))
	}

	m, err := h.svc.Update(c.Request().Context(), id, updates)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, m)
}

// Delete handles DELETE /meetings?id=&action=archive|delete. The default
// action is an archive; action=delete removes the meeting and its child rows
// permanently. Without an id the call archives every active meeting, which
// exists for demo environments and is refused in production.
func (h *Meeting) Delete(c echo.Context) error {
	if c.QueryParam("id") == "" {
		return h.archiveAll(c)
	}

	id, err := parseMeetingIDQuery(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	action := c.QueryParam("action")
	status := string(entities.MeetingStatusArchived)
	switch action {
	case "", "archive":
		err = h.svc.Archive(c.Request().Context(), id)
	case "delete":
		status = string(entities.MeetingStatusDeleted)
		err = h.svc.HardDelete(c.Request().Context(), id)
	default:
		return HandleError(h.logger, c, errors.ErrInvalidArgument("action must be archive or delete"))
	}
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingdto.DeleteMeetingResponse{
		MeetingID: id.String(),
		Status:    status,
	})
}

func (h *Meeting) archiveAll(c echo.Context) error {
	if h.cfg != nil && h.cfg.IsProduction() {
		return HandleError(h.logger, c, errors.ErrForbidden("bulk archive is disabled in production"))
	}

	archived, err := h.svc.ArchiveAll(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingdto.ArchiveAllResponse{Archived: archived})
}

func parseMeetingID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("invalid meeting id")
	}
	return id, nil
}

func parseMeetingIDQuery(c echo.Context) (uuid.UUID, error) {
	raw := c.QueryParam("id")
	if raw == "" {
		return uuid.Nil, errors.ErrInvalidArgument("id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("invalid meeting id")
	}
	return id, nil
}
