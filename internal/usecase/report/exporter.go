package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/notetakerhq/meeting-notes-api/errors"
	"github.com/notetakerhq/meeting-notes-api/internal/usecase/meeting"
)

const (
	sheetOverview     = "Overview"
	sheetParticipants = "Participants"
	sheetSummary      = "Summary"

	timeLayout = "2006-01-02 15:04:05"
)

// Exporter renders a meeting aggregate into an XLSX workbook
type Exporter struct {
	logger *zap.Logger
}

// NewExporter creates a report exporter
func NewExporter(logger *zap.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// Filename returns the download name for a meeting workbook
func Filename(agg *meeting.Aggregate) string {
	return fmt.Sprintf("meeting-%s.xlsx", agg.Meeting.ID)
}

// ExportXLSX builds a three-sheet workbook from the aggregate and returns
// the serialized file
func (e *Exporter) ExportXLSX(agg *meeting.Aggregate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetOverview)
	if err := e.writeOverview(f, agg); err != nil {
		return nil, errors.ErrReportExportFailed("xlsx", err)
	}
	if err := e.writeParticipants(f, agg); err != nil {
		return nil, errors.ErrReportExportFailed("xlsx", err)
	}
	if err := e.writeSummary(f, agg); err != nil {
		return nil, errors.ErrReportExportFailed("xlsx", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.ErrReportExportFailed("xlsx", err)
	}

	if e.logger != nil {
		e.logger.Info("report exported",
			zap.String("meeting_id", agg.Meeting.ID.String()),
			zap.Int("bytes", buf.Len()),
		)
	}

	return buf.Bytes(), nil
}

func (e *Exporter) writeOverview(f *excelize.File, agg *meeting.Aggregate) error {
	m := agg.Meeting

	endTime := ""
	if m.EndTime != nil {
		endTime = m.EndTime.Format(timeLayout)
	}
	duration := ""
	if m.DurationSeconds > 0 {
		duration = (time.Duration(m.DurationSeconds) * time.Second).String()
	}

	rows := [][2]string{
		{"Meeting ID", m.ID.String()},
		{"Title", m.Title},
		{"Description", m.Description},
		{"Status", string(m.Status)},
		{"Platform", m.Platform},
		{"Start Time", m.StartTime.Format(timeLayout)},
		{"End Time", endTime},
		{"Duration", duration},
		{"Meeting URL", m.MeetingURL},
		{"Created At", m.CreatedAt.Format(timeLayout)},
	}

	for i, row := range rows {
		cell := "A" + strconv.Itoa(i+1)
		if err := f.SetSheetRow(sheetOverview, cell, &[]interface{}{row[0], row[1]}); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetOverview, "A", "B", 32)
}

func (e *Exporter) writeParticipants(f *excelize.File, agg *meeting.Aggregate) error {
	if _, err := f.NewSheet(sheetParticipants); err != nil {
		return err
	}

	header := []interface{}{"Name", "Email", "Role", "Join Time", "Leave Time"}
	if err := f.SetSheetRow(sheetParticipants, "A1", &header); err != nil {
		return err
	}

	for i, p := range agg.Participants {
		joinTime, leaveTime := "", ""
		if p.JoinTime != nil {
			joinTime = p.JoinTime.Format(timeLayout)
		}
		if p.LeaveTime != nil {
			leaveTime = p.LeaveTime.Format(timeLayout)
		}
		row := []interface{}{p.Name, p.Email, string(p.Role), joinTime, leaveTime}
		if err := f.SetSheetRow(sheetParticipants, "A"+strconv.Itoa(i+2), &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetParticipants, "A", "E", 24)
}

func (e *Exporter) writeSummary(f *excelize.File, agg *meeting.Aggregate) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}

	row := 1
	writeRow := func(values ...interface{}) error {
		err := f.SetSheetRow(sheetSummary, "A"+strconv.Itoa(row), &values)
		row++
		return err
	}
	writeList := func(heading string, items []string) error {
		if err := writeRow(heading); err != nil {
			return err
		}
		if len(items) == 0 {
			return writeRow("", "none recorded")
		}
		for _, item := range items {
			if err := writeRow("", item); err != nil {
				return err
			}
		}
		return nil
	}

	if agg.Summary == nil {
		if err := writeRow("No summary available for this meeting"); err != nil {
			return err
		}
		return f.SetColWidth(sheetSummary, "A", "B", 48)
	}

	s := agg.Summary
	if err := writeRow("Summary", s.SummaryText); err != nil {
		return err
	}
	if err := writeRow("Provider", s.Provider); err != nil {
		return err
	}
	if agg.Transcript != nil {
		if err := writeRow("Transcript Source", agg.Transcript.Provider); err != nil {
			return err
		}
		if err := writeRow("Transcript Confidence", agg.Transcript.ConfidenceScore); err != nil {
			return err
		}
	}

	for _, section := range []struct {
		heading string
		items   []string
	}{
		{"Key Points", s.KeyPoints},
		{"Action Items", s.ActionItems},
		{"Decisions", s.Decisions},
		{"Next Steps", s.NextSteps},
	} {
		if err := writeList(section.heading, section.items); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetSummary, "A", "B", 48)
}
