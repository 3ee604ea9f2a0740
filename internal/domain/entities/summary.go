package entities

import (
	"time"

	"github.com/google/uuid"
)

// Summary providers
const (
	SummaryProviderGroq      = "groq"
	SummaryProviderHeuristic = "heuristic"
)

// Summary is the structured LLM output for a meeting. The list fields are
// stored as JSONB arrays and must round-trip in order.
type Summary struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID        uuid.UUID  `json:"meeting_id" gorm:"type:uuid;not null;index"`
	TranscriptID     *uuid.UUID `json:"transcript_id,omitempty" gorm:"type:uuid"`
	SummaryText      string     `json:"summary_text" gorm:"type:text;not null"`
	KeyPoints        []string   `json:"key_points" gorm:"type:jsonb;serializer:json"`
	ActionItems      []string   `json:"action_items" gorm:"type:jsonb;serializer:json"`
	Decisions        []string   `json:"decisions" gorm:"type:jsonb;serializer:json"`
	NextSteps        []string   `json:"next_steps" gorm:"type:jsonb;serializer:json"`
	Provider         string     `json:"ai_provider" gorm:"type:varchar(50);not null"`
	ProcessingTimeMs int64      `json:"processing_time_ms,omitempty"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Summary) TableName() string {
	return "summaries"
}

// NewSummary creates a summary with initialized list fields
func NewSummary(meetingID uuid.UUID, summaryText, provider string) *Summary {
	return &Summary{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		SummaryText: summaryText,
		KeyPoints:   make([]string, 0),
		ActionItems: make([]string, 0),
		Decisions:   make([]string, 0),
		NextSteps:   make([]string, 0),
		Provider:    provider,
		CreatedAt:   time.Now(),
	}
}
