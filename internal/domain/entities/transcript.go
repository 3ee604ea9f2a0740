package entities

import (
	"time"

	"github.com/google/uuid"
)

// Transcript providers
const (
	TranscriptProviderAssemblyAI = "assemblyai"
	TranscriptProviderFallback   = "fallback"
)

// Transcript is the stored transcript model. Content may come from the
// transcription provider or from the fallback corpus; Provider records which.
type Transcript struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID        uuid.UUID  `json:"meeting_id" gorm:"type:uuid;not null;index"`
	RecordingID      *uuid.UUID `json:"recording_id,omitempty" gorm:"type:uuid"`
	Content          string     `json:"content" gorm:"type:text;not null"`
	Language         string     `json:"language" gorm:"type:varchar(20);default:'en'"`
	ConfidenceScore  float64    `json:"confidence_score,omitempty"`
	ProcessingTimeMs int64      `json:"processing_time_ms,omitempty"`
	Provider         string     `json:"api_provider" gorm:"type:varchar(50);not null"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Transcript) TableName() string {
	return "transcripts"
}

// NewTranscript creates a new transcript
func NewTranscript(meetingID uuid.UUID, content, language, provider string) *Transcript {
	return &Transcript{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Content:   content,
		Language:  language,
		Provider:  provider,
		CreatedAt: time.Now(),
	}
}
