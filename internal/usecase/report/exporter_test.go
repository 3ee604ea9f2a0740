package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/notetakerhq/meeting-notes-api/internal/domain/entities"
	"github.com/notetakerhq/meeting-notes-api/internal/usecase/meeting"
)

func sampleAggregate(t *testing.T) *meeting.Aggregate {
	t.Helper()

	m := entities.NewMeeting("Sprint Planning", time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	m.DurationSeconds = 1800

	p1 := entities.NewParticipant(m.ID, "Aman")
	p1.Email = "aman@example.com"
	p1.Role = entities.ParticipantRoleOrganizer
	p2 := entities.NewParticipant(m.ID, "Priya")

	transcript := entities.NewTranscript(m.ID, "Hello team.", "en", entities.TranscriptProviderAssemblyAI)
	transcript.ConfidenceScore = 0.92

	summary := entities.NewSummary(m.ID, "Planning meeting overview.", entities.SummaryProviderGroq)
	summary.KeyPoints = []string{"Backend on track", "Frontend blocked on design"}
	summary.ActionItems = []string{"Ship release"}
	summary.NextSteps = []string{"Sync next week"}

	return &meeting.Aggregate{
		Meeting:      m,
		Participants: []*entities.Participant{p1, p2},
		Transcript:   transcript,
		Summary:      summary,
	}
}

func TestExportXLSX_RoundTrip(t *testing.T) {
	agg := sampleAggregate(t)

	data, err := NewExporter(nil).ExportXLSX(agg)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Overview", "Participants", "Summary"}, f.GetSheetList())

	title, err := f.GetCellValue("Overview", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Sprint Planning", title)

	status, err := f.GetCellValue("Overview", "B4")
	require.NoError(t, err)
	assert.Equal(t, "active", status)

	name, err := f.GetCellValue("Participants", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Aman", name)
	role, err := f.GetCellValue("Participants", "C2")
	require.NoError(t, err)
	assert.Equal(t, "organizer", role)

	summaryText, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Planning meeting overview.", summaryText)
}

func TestExportXLSX_WithoutSummary(t *testing.T) {
	agg := sampleAggregate(t)
	agg.Summary = nil
	agg.Transcript = nil

	data, err := NewExporter(nil).ExportXLSX(agg)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	placeholder, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "No summary available for this meeting", placeholder)
}

func TestFilename(t *testing.T) {
	agg := sampleAggregate(t)
	assert.Equal(t, "meeting-"+agg.Meeting.ID.String()+".xlsx", Filename(agg))
}
