package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/notetakerhq/meeting-notes-api/internal/domain/entities"
)

// RecordingRepository defines recording persistence operations
type RecordingRepository interface {
	Create(ctx context.Context, recording *entities.Recording) error
	FindLatestByMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Recording, error)
}

// TranscriptRepository defines transcript persistence operations
type TranscriptRepository interface {
	Create(ctx context.Context, transcript *entities.Transcript) error
	FindLatestByMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Transcript, error)
}

// SummaryRepository defines summary persistence operations
type SummaryRepository interface {
	Create(ctx context.Context, summary *entities.Summary) error
	FindLatestByMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Summary, error)
}

// NotificationRepository is the append-only email attempt log
type NotificationRepository interface {
	Append(ctx context.Context, notification *entities.Notification) error
	FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Notification, error)
}
