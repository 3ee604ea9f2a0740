package pipeline

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/notetakerhq/meeting-notes-api/errors"
	"github.com/notetakerhq/meeting-notes-api/internal/domain/entities"
	"github.com/notetakerhq/meeting-notes-api/internal/domain/repositories"
	"github.com/notetakerhq/meeting-notes-api/internal/usecase/notify"
	"github.com/notetakerhq/meeting-notes-api/internal/usecase/summarize"
	"github.com/notetakerhq/meeting-notes-api/internal/usecase/transcribe"
)

// Stage names one step of the recording pipeline
type Stage string

const (
	StageReceived          Stage = "RECEIVED"
	StageMeetingCreated    Stage = "MEETING_CREATED"
	StageParticipantsAdded Stage = "PARTICIPANTS_ADDED"
	StageRecordingLogged   Stage = "RECORDING_LOGGED"
	StageTranscribed       Stage = "TRANSCRIBED"
	StageTranscriptSaved   Stage = "TRANSCRIPT_SAVED"
	StageSummarized        Stage = "SUMMARIZED"
	StageSummarySaved      Stage = "SUMMARY_SAVED"
	StageNotified          Stage = "NOTIFIED"
	StageComplete          Stage = "COMPLETE"
)

// Transcriber turns audio into a transcript, never failing
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, lang transcribe.Language) transcribe.Result
}

// Summarizer turns a transcript into a structured summary, never failing
type Summarizer interface {
	Summarize(ctx context.Context, transcript, title string, participants []string) summarize.Result
}

// Notifier fans the summary out to participants
type Notifier interface {
	Dispatch(ctx context.Context, meeting *entities.Meeting, summary *entities.Summary, participants []*entities.Participant) notify.Result
}

// AudioArchive stores the raw recording bytes. A nil archive disables the
// best-effort archival step.
type AudioArchive interface {
	ArchiveAudio(ctx context.Context, objectName string, audio []byte, contentType string) error
}

// AggregateCache invalidates cached meeting aggregates. Nil disables it.
type AggregateCache interface {
	Invalidate(ctx context.Context, meetingID string)
}

// ParticipantInput is one participant on a pipeline invocation
type ParticipantInput struct {
	Name  string
	Email string
	Role  string
}

// Input carries one recording through the pipeline
type Input struct {
	Title           string
	Description     string
	StartTime       time.Time
	DurationSeconds int
	MeetingURL      string
	Platform        string
	UserID          *uuid.UUID
	Language        transcribe.Language
	Format          string
	AudioData       string // base64
	Participants    []ParticipantInput
}

// TranscriptPayload is the transcript slice of the pipeline result
type TranscriptPayload struct {
	Content    string  `json:"content"`
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language"`
	Provider   string  `json:"source"`
}

// Output is the COMPLETE envelope of one pipeline run
type Output struct {
	MeetingID        string            `json:"meetingId"`
	Stage            Stage             `json:"stage"`
	ProcessingTimeMs int64             `json:"processingTimeMs"`
	Transcript       TranscriptPayload `json:"transcript"`
	Summary          summarize.Result  `json:"summary"`
	Participants     []string          `json:"participants"`
	Notifications    notify.Result     `json:"notifications"`
	DashboardURL     string            `json:"dashboardUrl"`
	TranscriptURL    string            `json:"transcriptUrl"`
}

// Service orchestrates the linear recording pipeline. Persistence failures
// abort the run; transcription and summarization degrade inside their
// adapters; archival and notification failures are logged and absorbed.
type Service struct {
	meetings      repositories.MeetingRepository
	participants  repositories.ParticipantRepository
	recordings    repositories.RecordingRepository
	transcripts   repositories.TranscriptRepository
	summaries     repositories.SummaryRepository
	transcriber   Transcriber
	summarizer    Summarizer
	notifier      Notifier
	archive       AudioArchive
	cache         AggregateCache
	publicBaseURL string
	logger        *zap.Logger
}

// NewService creates a pipeline service
func NewService(
	meetings repositories.MeetingRepository,
	participants repositories.ParticipantRepository,
	recordings repositories.RecordingRepository,
	transcripts repositories.TranscriptRepository,
	summaries repositories.SummaryRepository,
	transcriber Transcriber,
	summarizer Summarizer,
	notifier Notifier,
	archive AudioArchive,
	cache AggregateCache,
	publicBaseURL string,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetings:      meetings,
		participants:  participants,
		recordings:    recordings,
		transcripts:   transcripts,
		summaries:     summaries,
		transcriber:   transcriber,
		summarizer:    summarizer,
		notifier:      notifier,
		archive:       archive,
		cache:         cache,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Run executes all pipeline stages for one recording
func (s *Service) Run(ctx context.Context, in Input) (*Output, error) {
	start := time.Now()

	// Preconditions: reject before any row is written.
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, errors.ErrInvalidArgument("title is required")
	}
	audio, err := base64.StdEncoding.DecodeString(strings.TrimSpace(in.AudioData))
	if err != nil || len(audio) == 0 {
		return nil, errors.ErrMissingAudioData()
	}
	s.logStage(StageReceived, "", zap.Int("audio_bytes", len(audio)))

	// MEETING_CREATED
	startTime := in.StartTime
	if startTime.IsZero() {
		startTime = time.Now()
	}
	m := entities.NewMeeting(title, startTime)
	m.UserID = in.UserID
	m.Description = in.Description
	m.DurationSeconds = in.DurationSeconds
	m.MeetingURL = in.MeetingURL
	if in.Platform != "" {
		m.Platform = in.Platform
	}
	if in.DurationSeconds > 0 {
		end := startTime.Add(time.Duration(in.DurationSeconds) * time.Second)
		m.EndTime = &end
	}
	if err := s.meetings.Create(ctx, m); err != nil {
		return nil, s.fail(StageMeetingCreated, start, err)
	}
	s.logStage(StageMeetingCreated, m.ID.String())

	// PARTICIPANTS_ADDED
	batch := make([]*entities.Participant, 0, len(in.Participants))
	names := make([]string, 0, len(in.Participants))
	for _, pi := range in.Participants {
		name := strings.TrimSpace(pi.Name)
		if name == "" {
			continue
		}
		p := entities.NewParticipant(m.ID, name)
		p.Email = pi.Email
		p.Role = parseRole(pi.Role)
		batch = append(batch, p)
		names = append(names, name)
	}
	if err := s.participants.AddBatch(ctx, batch); err != nil {
		return nil, s.fail(StageParticipantsAdded, start, err)
	}
	s.logStage(StageParticipantsAdded, m.ID.String(), zap.Int("participants", len(batch)))

	// RECORDING_LOGGED
	format := in.Format
	if format == "" {
		format = "webm"
	}
	objectName := fmt.Sprintf("recordings/%s.%s", m.ID, format)
	recording := entities.NewRecording(m.ID, objectName, format, int64(len(audio)))
	recording.DurationSeconds = in.DurationSeconds
	if err := s.recordings.Create(ctx, recording); err != nil {
		return nil, s.fail(StageRecordingLogged, start, err)
	}
	if s.archive != nil {
		if err := s.archive.ArchiveAudio(ctx, objectName, audio, "audio/"+format); err != nil && s.logger != nil {
			s.logger.Warn("audio archive failed, continuing",
				zap.String("meeting_id", m.ID.String()),
				zap.String("object", objectName),
				zap.Error(err),
			)
		}
	}
	s.logStage(StageRecordingLogged, m.ID.String(), zap.String("object", objectName))

	// TRANSCRIBED
	tRes := s.transcriber.Transcribe(ctx, audio, in.Language)
	s.logStage(StageTranscribed, m.ID.String(), zap.String("source", tRes.Provider))

	// TRANSCRIPT_SAVED
	transcript := entities.NewTranscript(m.ID, tRes.Text, string(tRes.Language), tRes.Provider)
	transcript.RecordingID = &recording.ID
	transcript.ConfidenceScore = tRes.Confidence
	transcript.ProcessingTimeMs = tRes.ProcessingTimeMs
	if err := s.transcripts.Create(ctx, transcript); err != nil {
		return nil, s.fail(StageTranscriptSaved, start, err)
	}
	s.logStage(StageTranscriptSaved, m.ID.String())

	// SUMMARIZED
	sRes := s.summarizer.Summarize(ctx, tRes.Text, title, names)
	s.logStage(StageSummarized, m.ID.String(), zap.String("provider", sRes.Provider))

	// SUMMARY_SAVED
	summary := entities.NewSummary(m.ID, sRes.Summary, sRes.Provider)
	summary.TranscriptID = &transcript.ID
	summary.KeyPoints = sRes.KeyPoints
	summary.ActionItems = sRes.ActionItems
	summary.Decisions = sRes.Decisions
	summary.NextSteps = sRes.NextSteps
	summary.ProcessingTimeMs = sRes.ProcessingTimeMs
	if err := s.summaries.Create(ctx, summary); err != nil {
		return nil, s.fail(StageSummarySaved, start, err)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, m.ID.String())
	}
	s.logStage(StageSummarySaved, m.ID.String())

	// NOTIFIED: failures are logged inside the dispatcher, never fatal
	nRes := s.notifier.Dispatch(ctx, m, summary, batch)
	s.logStage(StageNotified, m.ID.String(), zap.Int("sent", nRes.Sent), zap.Int("failed", nRes.Failed))

	out := &Output{
		MeetingID:        m.ID.String(),
		Stage:            StageComplete,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		Transcript: TranscriptPayload{
			Content:    tRes.Text,
			Confidence: tRes.Confidence,
			Language:   string(tRes.Language),
			Provider:   tRes.Provider,
		},
		Summary:       sRes,
		Participants:  names,
		Notifications: nRes,
		DashboardURL:  fmt.Sprintf("%s/dashboard/meetings/%s", s.publicBaseURL, m.ID),
		TranscriptURL: fmt.Sprintf("%s/dashboard/meetings/%s/transcript", s.publicBaseURL, m.ID),
	}
	s.logStage(StageComplete, m.ID.String(), zap.Int64("processing_time_ms", out.ProcessingTimeMs))

	return out, nil
}

func (s *Service) fail(stage Stage, start time.Time, err error) error {
	elapsed := time.Since(start).Milliseconds()
	if s.logger != nil {
		s.logger.Error("pipeline aborted",
			zap.String("stage", string(stage)),
			zap.Int64("processing_time_ms", elapsed),
			zap.Error(err),
		)
	}
	return errors.ErrProcessingFailed(err).
		WithDetail("stage", string(stage)).
		WithDetail("processing_time_ms", strconv.FormatInt(elapsed, 10))
}

func (s *Service) logStage(stage Stage, meetingID string, fields ...zap.Field) {
	if s.logger == nil {
		return
	}
	all := make([]zap.Field, 0, len(fields)+2)
	all = append(all, zap.String("stage", string(stage)))
	if meetingID != "" {
		all = append(all, zap.String("meeting_id", meetingID))
	}
	all = append(all, fields...)
	s.logger.Info("pipeline stage", all...)
}

func parseRole(s string) entities.ParticipantRole {
	switch entities.ParticipantRole(s) {
	case entities.ParticipantRoleOrganizer:
		return entities.ParticipantRoleOrganizer
	case entities.ParticipantRolePresenter:
		return entities.ParticipantRolePresenter
	default:
		return entities.ParticipantRoleAttendee
	}
}
