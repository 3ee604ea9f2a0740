package meeting

import (
	"context"
	stdErrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/notetakerhq/meeting-notes-api/errors"
	"github.com/notetakerhq/meeting-notes-api/internal/domain/entities"
	"github.com/notetakerhq/meeting-notes-api/internal/domain/repositories"
)

type memMeetingRepo struct {
	byID      map[uuid.UUID]*entities.Meeting
	updateErr error
}

func newMemMeetingRepo() *memMeetingRepo {
	return &memMeetingRepo{byID: make(map[uuid.UUID]*entities.Meeting)}
}

func (m *memMeetingRepo) Create(ctx context.Context, meeting *entities.Meeting) error {
	m.byID[meeting.ID] = meeting
	return nil
}

func (m *memMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return m.byID[id], nil
}

func (m *memMeetingRepo) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	var out []*entities.Meeting
	for _, meeting := range m.byID {
		out = append(out, meeting)
	}
	return out, nil
}

func (m *memMeetingRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*entities.Meeting, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	meeting, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	if status, ok := updates["status"]; ok {
		meeting.Status = status.(entities.MeetingStatus)
	}
	if title, ok := updates["title"]; ok {
		meeting.Title = title.(string)
	}
	return meeting, nil
}

func (m *memMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.byID, id)
	return nil
}

func (m *memMeetingRepo) ArchiveAll(ctx context.Context) (int64, error) {
	var n int64
	for _, meeting := range m.byID {
		if meeting.Status == entities.MeetingStatusActive {
			meeting.Status = entities.MeetingStatusArchived
			n++
		}
	}
	return n, nil
}

type memParticipantRepo struct {
	byMeeting map[uuid.UUID][]*entities.Participant
}

func newMemParticipantRepo() *memParticipantRepo {
	return &memParticipantRepo{byMeeting: make(map[uuid.UUID][]*entities.Participant)}
}

func (m *memParticipantRepo) AddBatch(ctx context.Context, participants []*entities.Participant) error {
	for _, p := range participants {
		m.byMeeting[p.MeetingID] = append(m.byMeeting[p.MeetingID], p)
	}
	return nil
}

func (m *memParticipantRepo) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Participant, error) {
	return m.byMeeting[meetingID], nil
}

type memRecordingRepo struct {
	byMeeting map[uuid.UUID]*entities.Recording
}

func (m *memRecordingRepo) Create(ctx context.Context, r *entities.Recording) error {
	m.byMeeting[r.MeetingID] = r
	return nil
}

func (m *memRecordingRepo) FindLatestByMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Recording, error) {
	return m.byMeeting[meetingID], nil
}

type memNotificationRepo struct {
	byMeeting map[uuid.UUID][]*entities.Notification
}

func (m *memNotificationRepo) Append(ctx context.Context, n *entities.Notification) error {
	m.byMeeting[n.MeetingID] = append(m.byMeeting[n.MeetingID], n)
	return nil
}

func (m *memNotificationRepo) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Notification, error) {
	return m.byMeeting[meetingID], nil
}

type stubSigner struct {
	calls int
	err   error
}

func (s *stubSigner) GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "https://minio.example.com/" + objectName, nil
}

type memTranscriptRepo struct {
	byMeeting map[uuid.UUID]*entities.Transcript
}

func (m *memTranscriptRepo) Create(ctx context.Context, t *entities.Transcript) error {
	m.byMeeting[t.MeetingID] = t
	return nil
}

func (m *memTranscriptRepo) FindLatestByMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Transcript, error) {
	return m.byMeeting[meetingID], nil
}

type memSummaryRepo struct {
	byMeeting map[uuid.UUID]*entities.Summary
}

func (m *memSummaryRepo) Create(ctx context.Context, s *entities.Summary) error {
	m.byMeeting[s.MeetingID] = s
	return nil
}

func (m *memSummaryRepo) FindLatestByMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Summary, error) {
	return m.byMeeting[meetingID], nil
}

type memCache struct {
	entries     map[string]*Aggregate
	hits        int
	invalidated []string
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]*Aggregate)}
}

func (c *memCache) Get(ctx context.Context, meetingID string, v interface{}) bool {
	agg, ok := c.entries[meetingID]
	if !ok {
		return false
	}
	c.hits++
	*(v.(*Aggregate)) = *agg
	return true
}

func (c *memCache) Set(ctx context.Context, meetingID string, v interface{}) {
	agg := *(v.(*Aggregate))
	c.entries[meetingID] = &agg
}

func (c *memCache) Invalidate(ctx context.Context, meetingID string) {
	delete(c.entries, meetingID)
	c.invalidated = append(c.invalidated, meetingID)
}

type serviceFixture struct {
	service       *Service
	meetings      *memMeetingRepo
	participants  *memParticipantRepo
	recordings    *memRecordingRepo
	transcripts   *memTranscriptRepo
	summaries     *memSummaryRepo
	notifications *memNotificationRepo
	cache         *memCache
	signer        *stubSigner
}

func newServiceFixture() *serviceFixture {
	fx := &serviceFixture{
		meetings:      newMemMeetingRepo(),
		participants:  newMemParticipantRepo(),
		recordings:    &memRecordingRepo{byMeeting: make(map[uuid.UUID]*entities.Recording)},
		transcripts:   &memTranscriptRepo{byMeeting: make(map[uuid.UUID]*entities.Transcript)},
		summaries:     &memSummaryRepo{byMeeting: make(map[uuid.UUID]*entities.Summary)},
		notifications: &memNotificationRepo{byMeeting: make(map[uuid.UUID][]*entities.Notification)},
		cache:         newMemCache(),
		signer:        &stubSigner{},
	}
	fx.service = NewService(
		fx.meetings, fx.participants, fx.recordings, fx.transcripts, fx.summaries,
		fx.notifications, fx.cache, fx.signer, nil,
	)
	return fx
}

func TestCreate_RequiresTitle(t *testing.T) {
	fx := newServiceFixture()

	_, err := fx.service.Create(context.Background(), CreateInput{Title: "   "})

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestCreate_WithInlineParticipants(t *testing.T) {
	fx := newServiceFixture()

	m, err := fx.service.Create(context.Background(), CreateInput{
		Title: "Sprint Planning",
		Participants: []ParticipantInput{
			{Name: "Aman", Email: "aman@example.com", Role: "organizer"},
			{Name: "Priya"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, m)

	ps := fx.participants.byMeeting[m.ID]
	require.Len(t, ps, 2)
	assert.Equal(t, entities.ParticipantRoleOrganizer, ps[0].Role)
	assert.Equal(t, entities.ParticipantRoleAttendee, ps[1].Role)
}

func TestGetComplete_AbsentMeetingIsNilNil(t *testing.T) {
	fx := newServiceFixture()

	agg, err := fx.service.GetComplete(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, agg)
}

func TestGetComplete_AssemblesAndCaches(t *testing.T) {
	fx := newServiceFixture()

	m, err := fx.service.Create(context.Background(), CreateInput{
		Title:        "Weekly Sync",
		Participants: []ParticipantInput{{Name: "Aman"}},
	})
	require.NoError(t, err)

	recording := entities.NewRecording(m.ID, "recordings/"+m.ID.String()+".webm", "webm", 2048)
	require.NoError(t, fx.recordings.Create(context.Background(), recording))
	transcript := entities.NewTranscript(m.ID, "Hello.", "en", entities.TranscriptProviderAssemblyAI)
	require.NoError(t, fx.transcripts.Create(context.Background(), transcript))
	summary := entities.NewSummary(m.ID, "Weekly sync overview.", entities.SummaryProviderGroq)
	summary.KeyPoints = []string{"a", "b", "c"}
	require.NoError(t, fx.summaries.Create(context.Background(), summary))
	notification := entities.NewNotification(m.ID, "aman@example.com", "Meeting Summary", "body")
	require.NoError(t, fx.notifications.Append(context.Background(), notification))

	agg, err := fx.service.GetComplete(context.Background(), m.ID)
	require.NoError(t, err)
	require.NotNil(t, agg)
	assert.Equal(t, m.ID, agg.Meeting.ID)
	assert.Len(t, agg.Participants, 1)
	require.NotNil(t, agg.Recording)
	require.NotNil(t, agg.Summary)
	assert.Equal(t, []string{"a", "b", "c"}, agg.Summary.KeyPoints)
	require.Len(t, agg.Notifications, 1)
	assert.Equal(t, "aman@example.com", agg.Notifications[0].RecipientEmail)
	assert.Equal(t, "https://minio.example.com/"+recording.FilePath, agg.AudioURL)

	// second read is served from the cache but still gets a fresh URL
	cached, err := fx.service.GetComplete(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fx.cache.hits)
	assert.Equal(t, 2, fx.signer.calls)
	assert.NotEmpty(t, cached.AudioURL)
}

func TestGetComplete_SignerFailureIsNonFatal(t *testing.T) {
	fx := newServiceFixture()
	fx.signer.err = stdErrors.New("presign refused")

	m, err := fx.service.Create(context.Background(), CreateInput{Title: "Weekly Sync"})
	require.NoError(t, err)
	require.NoError(t, fx.recordings.Create(context.Background(),
		entities.NewRecording(m.ID, "recordings/x.webm", "webm", 1)))

	agg, err := fx.service.GetComplete(context.Background(), m.ID)
	require.NoError(t, err)
	require.NotNil(t, agg.Recording)
	assert.Empty(t, agg.AudioURL)
}

func TestUpdate_UnknownIDIsNotFound(t *testing.T) {
	fx := newServiceFixture()

	_, err := fx.service.Update(context.Background(), uuid.New(), map[string]interface{}{"title": "x"})

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestUpdate_InvalidatesCache(t *testing.T) {
	fx := newServiceFixture()

	m, err := fx.service.Create(context.Background(), CreateInput{Title: "Before"})
	require.NoError(t, err)

	_, err = fx.service.GetComplete(context.Background(), m.ID)
	require.NoError(t, err)
	require.Contains(t, fx.cache.entries, m.ID.String())

	_, err = fx.service.Update(context.Background(), m.ID, map[string]interface{}{"title": "After"})
	require.NoError(t, err)
	assert.NotContains(t, fx.cache.entries, m.ID.String())
}

func TestUpdate_RejectsUnarchiving(t *testing.T) {
	fx := newServiceFixture()

	m, err := fx.service.Create(context.Background(), CreateInput{Title: "Archived"})
	require.NoError(t, err)
	require.NoError(t, fx.service.Archive(context.Background(), m.ID))

	_, err = fx.service.Update(context.Background(), m.ID, map[string]interface{}{"status": "active"})

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, entities.MeetingStatusArchived, fx.meetings.byID[m.ID].Status)
}

func TestArchive_FlipsStatusAndKeepsRow(t *testing.T) {
	fx := newServiceFixture()

	m, err := fx.service.Create(context.Background(), CreateInput{Title: "To Archive"})
	require.NoError(t, err)

	require.NoError(t, fx.service.Archive(context.Background(), m.ID))

	stored := fx.meetings.byID[m.ID]
	require.NotNil(t, stored)
	assert.Equal(t, entities.MeetingStatusArchived, stored.Status)
}

func TestHardDelete_RemovesRow(t *testing.T) {
	fx := newServiceFixture()

	m, err := fx.service.Create(context.Background(), CreateInput{Title: "To Delete"})
	require.NoError(t, err)

	require.NoError(t, fx.service.HardDelete(context.Background(), m.ID))
	assert.NotContains(t, fx.meetings.byID, m.ID)

	// deleting again is a 404
	err = fx.service.HardDelete(context.Background(), m.ID)
	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestArchiveAll_CountsOnlyActive(t *testing.T) {
	fx := newServiceFixture()

	for _, title := range []string{"One", "Two"} {
		_, err := fx.service.Create(context.Background(), CreateInput{Title: title})
		require.NoError(t, err)
	}
	archived := entities.NewMeeting("Already Archived", time.Now())
	archived.Status = entities.MeetingStatusArchived
	require.NoError(t, fx.meetings.Create(context.Background(), archived))

	n, err := fx.service.ArchiveAll(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestUpdate_WrapsRepositoryErrors(t *testing.T) {
	fx := newServiceFixture()
	fx.meetings.updateErr = stdErrors.New("connection refused")

	_, err := fx.service.Update(context.Background(), uuid.New(), map[string]interface{}{"title": "x"})

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_DB_QUERY_FAILED, appErr.Code)
}
