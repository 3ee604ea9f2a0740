package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/notetakerhq/meeting-notes-api/internal/domain/entities"
)

// MeetingFilters defines filtering options for listing meetings
type MeetingFilters struct {
	UserID *uuid.UUID
	Status *entities.MeetingStatus
	Limit  int
	Offset int
}

// MeetingRepository defines meeting persistence operations.
// Lookups return (nil, nil) when the row does not exist.
type MeetingRepository interface {
	Create(ctx context.Context, meeting *entities.Meeting) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)
	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*entities.Meeting, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ArchiveAll(ctx context.Context) (int64, error)
}

// ParticipantRepository defines participant persistence operations
type ParticipantRepository interface {
	AddBatch(ctx context.Context, participants []*entities.Participant) error
	FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Participant, error)
}
