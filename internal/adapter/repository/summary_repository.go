package repository

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/notetakerhq/meeting-notes-api/internal/domain/entities"
	"github.com/notetakerhq/meeting-notes-api/internal/domain/repositories"
)

// summaryRepository implements the SummaryRepository interface
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(db *gorm.DB) repositories.SummaryRepository {
	return &summaryRepository{db: db}
}

// Create creates a new summary. List fields serialize to JSONB arrays,
// preserving element order.
func (r *summaryRepository) Create(ctx context.Context, summary *entities.Summary) error {
	return r.db.WithContext(ctx).Create(summary).Error
}

// FindLatestByMeeting retrieves the newest summary for a meeting, (nil, nil) when absent
func (r *summaryRepository) FindLatestByMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Summary, error) {
	var summary entities.Summary
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		First(&summary).Error

	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}
