package pipeline

import (
	"context"
	"encoding/base64"
	stdErrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/notetakerhq/meeting-notes-api/errors"
	"github.com/notetakerhq/meeting-notes-api/internal/domain/entities"
	"github.com/notetakerhq/meeting-notes-api/internal/domain/repositories"
	"github.com/notetakerhq/meeting-notes-api/internal/usecase/notify"
	"github.com/notetakerhq/meeting-notes-api/internal/usecase/summarize"
	"github.com/notetakerhq/meeting-notes-api/internal/usecase/transcribe"
)

type fakeMeetingRepo struct {
	created   []*entities.Meeting
	createErr error
}

func (f *fakeMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, m)
	return nil
}

func (f *fakeMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return nil, nil
}

func (f *fakeMeetingRepo) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	return nil, nil
}

func (f *fakeMeetingRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*entities.Meeting, error) {
	return nil, nil
}

func (f *fakeMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeMeetingRepo) ArchiveAll(ctx context.Context) (int64, error) { return 0, nil }

type fakeParticipantRepo struct {
	added []*entities.Participant
}

func (f *fakeParticipantRepo) AddBatch(ctx context.Context, participants []*entities.Participant) error {
	f.added = append(f.added, participants...)
	return nil
}

func (f *fakeParticipantRepo) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Participant, error) {
	return f.added, nil
}

type fakeRecordingRepo struct {
	created *entities.Recording
}

func (f *fakeRecordingRepo) Create(ctx context.Context, r *entities.Recording) error {
	f.created = r
	return nil
}

func (f *fakeRecordingRepo) FindLatestByMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Recording, error) {
	return f.created, nil
}

type fakeTranscriptRepo struct {
	created   *entities.Transcript
	createErr error
}

func (f *fakeTranscriptRepo) Create(ctx context.Context, t *entities.Transcript) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = t
	return nil
}

func (f *fakeTranscriptRepo) FindLatestByMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Transcript, error) {
	return f.created, nil
}

type fakeSummaryRepo struct {
	created *entities.Summary
}

func (f *fakeSummaryRepo) Create(ctx context.Context, s *entities.Summary) error {
	f.created = s
	return nil
}

func (f *fakeSummaryRepo) FindLatestByMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Summary, error) {
	return f.created, nil
}

type fakeTranscriber struct {
	result transcribe.Result
	calls  int
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio []byte, lang transcribe.Language) transcribe.Result {
	f.calls++
	return f.result
}

type fakeSummarizer struct {
	result summarize.Result
	calls  int
}

func (f *fakeSummarizer) Summarize(ctx context.Context, transcript, title string, participants []string) summarize.Result {
	f.calls++
	return f.result
}

type fakeNotifier struct {
	result notify.Result
	calls  int
}

func (f *fakeNotifier) Dispatch(ctx context.Context, meeting *entities.Meeting, summary *entities.Summary, participants []*entities.Participant) notify.Result {
	f.calls++
	return f.result
}

type fakeArchive struct {
	objects map[string][]byte
	err     error
}

func (f *fakeArchive) ArchiveAudio(ctx context.Context, objectName string, audio []byte, contentType string) error {
	if f.err != nil {
		return f.err
	}
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	f.objects[objectName] = audio
	return nil
}

type fakeCache struct {
	invalidated []string
}

func (f *fakeCache) Invalidate(ctx context.Context, meetingID string) {
	f.invalidated = append(f.invalidated, meetingID)
}

type pipelineFixture struct {
	service      *Service
	meetings     *fakeMeetingRepo
	participants *fakeParticipantRepo
	recordings   *fakeRecordingRepo
	transcripts  *fakeTranscriptRepo
	summaries    *fakeSummaryRepo
	transcriber  *fakeTranscriber
	summarizer   *fakeSummarizer
	notifier     *fakeNotifier
	archive      *fakeArchive
	cache        *fakeCache
}

func newPipelineFixture() *pipelineFixture {
	fx := &pipelineFixture{
		meetings:     &fakeMeetingRepo{},
		participants: &fakeParticipantRepo{},
		recordings:   &fakeRecordingRepo{},
		transcripts:  &fakeTranscriptRepo{},
		summaries:    &fakeSummaryRepo{},
		transcriber: &fakeTranscriber{result: transcribe.Result{
			Text:       "Hello team, project update.",
			Confidence: 0.92,
			Provider:   entities.TranscriptProviderAssemblyAI,
			Language:   transcribe.LanguageEnglish,
		}},
		summarizer: &fakeSummarizer{result: summarize.Result{
			Summary:     "Project update meeting.",
			KeyPoints:   []string{"Backend is on track"},
			ActionItems: []string{"Ship the release"},
			Decisions:   []string{},
			NextSteps:   []string{"Sync next week"},
			Provider:    entities.SummaryProviderGroq,
		}},
		notifier: &fakeNotifier{result: notify.Result{Sent: 2}},
		archive:  &fakeArchive{},
		cache:    &fakeCache{},
	}
	fx.service = NewService(
		fx.meetings, fx.participants, fx.recordings, fx.transcripts, fx.summaries,
		fx.transcriber, fx.summarizer, fx.notifier, fx.archive, fx.cache,
		"http://localhost:3000/", nil,
	)
	return fx
}

func validInput() Input {
	return Input{
		Title:           "Sprint Planning",
		StartTime:       time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		DurationSeconds: 1800,
		Language:        transcribe.LanguageEnglish,
		AudioData:       base64.StdEncoding.EncodeToString([]byte("fake audio bytes")),
		Participants: []ParticipantInput{
			{Name: "Aman", Email: "aman@example.com", Role: "organizer"},
			{Name: "Priya", Email: "priya@example.com"},
			{Name: "   "},
		},
	}
}

func TestRun_CompletesAllStages(t *testing.T) {
	fx := newPipelineFixture()

	out, err := fx.service.Run(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, StageComplete, out.Stage)
	assert.NotEmpty(t, out.MeetingID)
	assert.Equal(t, "Hello team, project update.", out.Transcript.Content)
	assert.Equal(t, entities.TranscriptProviderAssemblyAI, out.Transcript.Provider)
	assert.Equal(t, "Project update meeting.", out.Summary.Summary)
	assert.Equal(t, []string{"Aman", "Priya"}, out.Participants)
	assert.Equal(t, 2, out.Notifications.Sent)
	assert.Equal(t, "http://localhost:3000/dashboard/meetings/"+out.MeetingID, out.DashboardURL)
	assert.Equal(t, "http://localhost:3000/dashboard/meetings/"+out.MeetingID+"/transcript", out.TranscriptURL)

	// every persistence stage ran
	require.Len(t, fx.meetings.created, 1)
	assert.Len(t, fx.participants.added, 2)
	require.NotNil(t, fx.recordings.created)
	require.NotNil(t, fx.transcripts.created)
	require.NotNil(t, fx.summaries.created)
	assert.Equal(t, 1, fx.notifier.calls)

	// audio landed in the archive under the meeting-scoped key
	m := fx.meetings.created[0]
	assert.Contains(t, fx.archive.objects, "recordings/"+m.ID.String()+".webm")

	// the aggregate cache entry was dropped after the summary write
	assert.Equal(t, []string{m.ID.String()}, fx.cache.invalidated)

	// child rows point back at their parents
	assert.Equal(t, m.ID, fx.transcripts.created.MeetingID)
	require.NotNil(t, fx.transcripts.created.RecordingID)
	assert.Equal(t, fx.recordings.created.ID, *fx.transcripts.created.RecordingID)
	require.NotNil(t, fx.summaries.created.TranscriptID)
	assert.Equal(t, fx.transcripts.created.ID, *fx.summaries.created.TranscriptID)
}

func TestRun_RejectsMissingAudio(t *testing.T) {
	fx := newPipelineFixture()

	for name, audio := range map[string]string{
		"empty":       "",
		"not base64":  "!!!not-base64!!!",
		"zero length": base64.StdEncoding.EncodeToString(nil),
	} {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			in.AudioData = audio

			out, err := fx.service.Run(context.Background(), in)
			assert.Nil(t, out)

			var appErr apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.HTTPCode)
			assert.Equal(t, apperrors.ErrorCode_MISSING_AUDIO_DATA, appErr.Code)
		})
	}

	// nothing was written
	assert.Empty(t, fx.meetings.created)
}

func TestRun_RejectsEmptyTitle(t *testing.T) {
	fx := newPipelineFixture()
	in := validInput()
	in.Title = "   "

	out, err := fx.service.Run(context.Background(), in)
	assert.Nil(t, out)

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Empty(t, fx.meetings.created)
}

func TestRun_PersistenceFailureAborts(t *testing.T) {
	fx := newPipelineFixture()
	fx.transcripts.createErr = stdErrors.New("connection refused")

	out, err := fx.service.Run(context.Background(), validInput())
	assert.Nil(t, out)

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_PROCESSING_FAILED, appErr.Code)
	assert.Equal(t, string(StageTranscriptSaved), appErr.Details["stage"])

	// downstream stages never ran
	assert.Equal(t, 0, fx.summarizer.calls)
	assert.Equal(t, 0, fx.notifier.calls)
	assert.Nil(t, fx.summaries.created)
}

func TestRun_ArchiveFailureIsNonFatal(t *testing.T) {
	fx := newPipelineFixture()
	fx.archive.err = stdErrors.New("minio unreachable")

	out, err := fx.service.Run(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, StageComplete, out.Stage)
	require.NotNil(t, fx.summaries.created)
}

func TestRun_DefaultsStartTimeAndEndTime(t *testing.T) {
	fx := newPipelineFixture()
	in := validInput()
	in.StartTime = time.Time{}

	_, err := fx.service.Run(context.Background(), in)
	require.NoError(t, err)

	m := fx.meetings.created[0]
	assert.False(t, m.StartTime.IsZero())
	require.NotNil(t, m.EndTime)
	assert.Equal(t, 30*time.Minute, m.EndTime.Sub(m.StartTime))
}
