package repository

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/notetakerhq/meeting-notes-api/internal/domain/entities"
	"github.com/notetakerhq/meeting-notes-api/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting by its ID, (nil, nil) when absent
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

// List retrieves meetings newest first, with optional user filter
func (r *meetingRepository) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting

	query := r.db.WithContext(ctx).Model(&entities.Meeting{})

	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	} else {
		query = query.Where("status = ?", entities.MeetingStatusActive)
	}

	query = query.Order("start_time DESC")

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	query = query.Limit(limit)
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&meetings).Error
	return meetings, err
}

// Update applies a partial patch built from the provided fields only and
// returns the updated row, (nil, nil) when the meeting does not exist.
func (r *meetingRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*entities.Meeting, error) {
	if len(updates) == 0 {
		return r.FindByID(ctx, id)
	}

	res := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

// Delete permanently removes a meeting; child rows cascade at the schema level
func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Meeting{}).Error
}

// ArchiveAll flips every active meeting to archived and returns the count
func (r *meetingRepository) ArchiveAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("status = ?", entities.MeetingStatusActive).
		Update("status", entities.MeetingStatusArchived)
	return res.RowsAffected, res.Error
}
