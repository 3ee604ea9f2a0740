package repository

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/notetakerhq/meeting-notes-api/internal/domain/entities"
	"github.com/notetakerhq/meeting-notes-api/internal/domain/repositories"
)

// recordingRepository implements the RecordingRepository interface
type recordingRepository struct {
	db *gorm.DB
}

// NewRecordingRepository creates a new recording repository
func NewRecordingRepository(db *gorm.DB) repositories.RecordingRepository {
	return &recordingRepository{db: db}
}

// Create creates a new recording descriptor
func (r *recordingRepository) Create(ctx context.Context, recording *entities.Recording) error {
	return r.db.WithContext(ctx).Create(recording).Error
}

// FindLatestByMeeting retrieves the newest recording for a meeting, (nil, nil) when absent
func (r *recordingRepository) FindLatestByMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Recording, error) {
	var recording entities.Recording
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		First(&recording).Error

	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recording, nil
}
