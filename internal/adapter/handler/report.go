package handler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/notetakerhq/meeting-notes-api/errors"
	meetingusecase "github.com/notetakerhq/meeting-notes-api/internal/usecase/meeting"
	"github.com/notetakerhq/meeting-notes-api/internal/usecase/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// aggregateReader loads the full meeting view for export
type aggregateReader interface {
	GetComplete(ctx context.Context, id uuid.UUID) (*meetingusecase.Aggregate, error)
}

// reportExporter renders an aggregate into a workbook
type reportExporter interface {
	ExportXLSX(agg *meetingusecase.Aggregate) ([]byte, error)
}

// Report handles meeting export endpoints
type Report struct {
	meetings aggregateReader
	exporter reportExporter
	logger   *zap.Logger
}

// NewReport creates a report handler
func NewReport(meetings aggregateReader, exporter reportExporter, logger *zap.Logger) *Report {
	return &Report{meetings: meetings, exporter: exporter, logger: logger}
}

// Export handles GET /meeting/:id/export
func (h *Report) Export(c echo.Context) error {
	id, err := parseMeetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	agg, err := h.meetings.GetComplete(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	if agg == nil {
		return HandleError(h.logger, c, errors.ErrMeetingNotFound(id.String()))
	}

	data, err := h.exporter.ExportXLSX(agg)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, report.Filename(agg)))
	return c.Blob(200, xlsxContentType, data)
}
