package meeting

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/notetakerhq/meeting-notes-api/errors"
	"github.com/notetakerhq/meeting-notes-api/internal/domain/entities"
	"github.com/notetakerhq/meeting-notes-api/internal/domain/repositories"
)

// Cache is the aggregate cache surface the service needs. A nil cache
// disables caching entirely.
type Cache interface {
	Get(ctx context.Context, meetingID string, v interface{}) bool
	Set(ctx context.Context, meetingID string, v interface{})
	Invalidate(ctx context.Context, meetingID string)
}

// RecordingURLSigner produces a time-limited download URL for an archived
// recording object. A nil signer disables audio URLs on the aggregate.
type RecordingURLSigner interface {
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// audioURLExpiry bounds presigned recording URLs. URLs are signed on every
// read and never cached, so a short expiry is enough.
const audioURLExpiry = 15 * time.Minute

// ParticipantInput is one inline participant on meeting creation
type ParticipantInput struct {
	Name  string
	Email string
	Role  string
}

// CreateInput carries everything needed to create a meeting
type CreateInput struct {
	UserID          *uuid.UUID
	Title           string
	Description     string
	StartTime       time.Time
	EndTime         *time.Time
	DurationSeconds int
	MeetingURL      string
	Platform        string
	Participants    []ParticipantInput
}

// Aggregate is the complete view of one meeting. AudioURL is a presigned
// recording download link, populated per read when a signer is configured.
type Aggregate struct {
	Meeting       *entities.Meeting        `json:"meeting"`
	Participants  []*entities.Participant  `json:"participants"`
	Recording     *entities.Recording      `json:"recording,omitempty"`
	Transcript    *entities.Transcript     `json:"transcript,omitempty"`
	Summary       *entities.Summary        `json:"summary,omitempty"`
	Notifications []*entities.Notification `json:"notifications,omitempty"`
	AudioURL      string                   `json:"audio_url,omitempty"`
}

// Service implements meeting CRUD and the aggregate read path
type Service struct {
	meetings      repositories.MeetingRepository
	participants  repositories.ParticipantRepository
	recordings    repositories.RecordingRepository
	transcripts   repositories.TranscriptRepository
	summaries     repositories.SummaryRepository
	notifications repositories.NotificationRepository
	cache         Cache
	signer        RecordingURLSigner
	logger        *zap.Logger
}

// NewService creates a meeting service
func NewService(
	meetings repositories.MeetingRepository,
	participants repositories.ParticipantRepository,
	recordings repositories.RecordingRepository,
	transcripts repositories.TranscriptRepository,
	summaries repositories.SummaryRepository,
	notifications repositories.NotificationRepository,
	cache Cache,
	signer RecordingURLSigner,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetings:      meetings,
		participants:  participants,
		recordings:    recordings,
		transcripts:   transcripts,
		summaries:     summaries,
		notifications: notifications,
		cache:         cache,
		signer:        signer,
		logger:        logger,
	}
}

// ParseRole maps a request role string to a participant role,
// defaulting to attendee
func ParseRole(s string) entities.ParticipantRole {
	switch entities.ParticipantRole(s) {
	case entities.ParticipantRoleOrganizer:
		return entities.ParticipantRoleOrganizer
	case entities.ParticipantRolePresenter:
		return entities.ParticipantRolePresenter
	default:
		return entities.ParticipantRoleAttendee
	}
}

// Create creates an active meeting with optional inline participants
func (s *Service) Create(ctx context.Context, in CreateInput) (*entities.Meeting, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, errors.ErrInvalidArgument("title is required")
	}

	startTime := in.StartTime
	if startTime.IsZero() {
		startTime = time.Now()
	}

	m := entities.NewMeeting(title, startTime)
	m.UserID = in.UserID
	m.Description = in.Description
	m.EndTime = in.EndTime
	m.DurationSeconds = in.DurationSeconds
	m.MeetingURL = in.MeetingURL
	if in.Platform != "" {
		m.Platform = in.Platform
	}

	if err := s.meetings.Create(ctx, m); err != nil {
		return nil, errors.ErrDBQueryFailed("create meeting", err)
	}

	if len(in.Participants) > 0 {
		batch := make([]*entities.Participant, 0, len(in.Participants))
		for _, pi := range in.Participants {
			p := entities.NewParticipant(m.ID, strings.TrimSpace(pi.Name))
			p.Email = pi.Email
			p.Role = ParseRole(pi.Role)
			batch = append(batch, p)
		}
		if err := s.participants.AddBatch(ctx, batch); err != nil {
			return nil, errors.ErrDBQueryFailed("add participants", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("meeting created",
			zap.String("meeting_id", m.ID.String()),
			zap.String("title", m.Title),
		)
	}

	return m, nil
}

// List returns active meetings newest first, optionally filtered by user
func (s *Service) List(ctx context.Context, userID *uuid.UUID, limit int) ([]*entities.Meeting, error) {
	meetings, err := s.meetings.List(ctx, repositories.MeetingFilters{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, errors.ErrDBQueryFailed("list meetings", err)
	}
	return meetings, nil
}

// Update applies a partial patch built from the provided fields only.
// Status transitions are one-directional: a meeting can be archived but
// never flipped back to active.
func (s *Service) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*entities.Meeting, error) {
	if raw, ok := updates["status"]; ok {
		if entities.MeetingStatus(fmt.Sprint(raw)) != entities.MeetingStatusArchived {
			return nil, errors.ErrInvalidArgument("status can only change to archived")
		}
	}

	m, err := s.meetings.Update(ctx, id, updates)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("update meeting", err)
	}
	if m == nil {
		return nil, errors.ErrMeetingNotFound(id.String())
	}

	s.invalidate(ctx, id)
	return m, nil
}

// Archive soft-deletes a meeting by flipping its status
func (s *Service) Archive(ctx context.Context, id uuid.UUID) error {
	_, err := s.Update(ctx, id, map[string]interface{}{
		"status": entities.MeetingStatusArchived,
	})
	return err
}

// HardDelete permanently removes the meeting and, via schema cascades,
// all its child rows
func (s *Service) HardDelete(ctx context.Context, id uuid.UUID) error {
	m, err := s.meetings.FindByID(ctx, id)
	if err != nil {
		return errors.ErrDBQueryFailed("find meeting", err)
	}
	if m == nil {
		return errors.ErrMeetingNotFound(id.String())
	}

	if err := s.meetings.Delete(ctx, id); err != nil {
		return errors.ErrDBQueryFailed("delete meeting", err)
	}

	s.invalidate(ctx, id)
	return nil
}

// ArchiveAll archives every active meeting and returns the count
func (s *Service) ArchiveAll(ctx context.Context) (int64, error) {
	n, err := s.meetings.ArchiveAll(ctx)
	if err != nil {
		return 0, errors.ErrDBQueryFailed("archive all meetings", err)
	}
	if s.logger != nil {
		s.logger.Info("archived all active meetings", zap.Int64("count", n))
	}
	return n, nil
}

// GetComplete returns the full aggregate for a meeting, (nil, nil) when the
// meeting does not exist. Child fetches run in parallel; results are cached.
func (s *Service) GetComplete(ctx context.Context, id uuid.UUID) (*Aggregate, error) {
	if s.cache != nil {
		var cached Aggregate
		if s.cache.Get(ctx, id.String(), &cached) {
			s.signAudioURL(ctx, &cached)
			return &cached, nil
		}
	}

	m, err := s.meetings.FindByID(ctx, id)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("find meeting", err)
	}
	if m == nil {
		return nil, nil
	}

	agg := &Aggregate{Meeting: m}
	var (
		wg   sync.WaitGroup
		errs [5]error
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		agg.Participants, errs[0] = s.participants.FindByMeeting(ctx, id)
	}()
	go func() {
		defer wg.Done()
		agg.Recording, errs[1] = s.recordings.FindLatestByMeeting(ctx, id)
	}()
	go func() {
		defer wg.Done()
		agg.Transcript, errs[2] = s.transcripts.FindLatestByMeeting(ctx, id)
	}()
	go func() {
		defer wg.Done()
		agg.Summary, errs[3] = s.summaries.FindLatestByMeeting(ctx, id)
	}()
	go func() {
		defer wg.Done()
		agg.Notifications, errs[4] = s.notifications.FindByMeeting(ctx, id)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, errors.ErrDBQueryFailed("load meeting aggregate", err)
		}
	}

	if agg.Participants == nil {
		agg.Participants = make([]*entities.Participant, 0)
	}

	// Cache before signing; presigned URLs expire and must stay per-read.
	if s.cache != nil {
		s.cache.Set(ctx, id.String(), agg)
	}

	s.signAudioURL(ctx, agg)

	return agg, nil
}

// signAudioURL attaches a fresh presigned download URL for the archived
// recording. Signing failures leave the URL empty; the read still succeeds.
func (s *Service) signAudioURL(ctx context.Context, agg *Aggregate) {
	if s.signer == nil || agg.Recording == nil || agg.Recording.FilePath == "" {
		return
	}

	url, err := s.signer.GetFileURL(ctx, agg.Recording.FilePath, audioURLExpiry)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("presigning recording url failed",
				zap.String("meeting_id", agg.Meeting.ID.String()),
				zap.Error(err),
			)
		}
		return
	}
	agg.AudioURL = url
}

func (s *Service) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, id.String())
	}
}
