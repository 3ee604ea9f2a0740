package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/notetakerhq/meeting-notes-api/internal/domain/entities"
	"github.com/notetakerhq/meeting-notes-api/internal/domain/repositories"
)

// participantRepository implements the ParticipantRepository interface
type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) repositories.ParticipantRepository {
	return &participantRepository{db: db}
}

// AddBatch inserts participants in one batch. Duplicate names within the
// batch are suppressed (case-insensitive); an empty batch is a no-op.
func (r *participantRepository) AddBatch(ctx context.Context, participants []*entities.Participant) error {
	if len(participants) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(participants))
	deduped := make([]*entities.Participant, 0, len(participants))
	for _, p := range participants {
		key := strings.ToLower(strings.TrimSpace(p.Name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, p)
	}
	if len(deduped) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&deduped).Error
}

// FindByMeeting retrieves all participants for a meeting in insertion order
func (r *participantRepository) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Participant, error) {
	var participants []*entities.Participant
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&participants).Error
	return participants, err
}
