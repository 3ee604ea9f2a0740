package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/notetakerhq/meeting-notes-api/internal/domain/entities"
	"github.com/notetakerhq/meeting-notes-api/internal/domain/repositories"
)

// notificationRepository implements the NotificationRepository interface
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) repositories.NotificationRepository {
	return &notificationRepository{db: db}
}

// Append adds one email attempt row. The log is append-only; rows are
// never updated or deleted outside of meeting cascade deletion.
func (r *notificationRepository) Append(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

// FindByMeeting retrieves all notification rows for a meeting
func (r *notificationRepository) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Notification, error) {
	var notifications []*entities.Notification
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&notifications).Error
	return notifications, err
}
