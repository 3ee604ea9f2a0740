package pipeline

import (
	"time"

	"github.com/notetakerhq/meeting-notes-api/internal/adapter/dto/meeting"
)

// ProcessRecordingRequest represents one full pipeline invocation from the
// capture client. AudioData carries the base64-encoded recording.
type ProcessRecordingRequest struct {
	UserID          *string                      `json:"user_id,omitempty" validate:"omitempty,uuid"`
	Title           string                       `json:"title" validate:"required,min=1,max=500"`
	Description     string                       `json:"description,omitempty"`
	StartTime       *time.Time                   `json:"start_time,omitempty"`
	DurationSeconds int                          `json:"duration_seconds,omitempty" validate:"omitempty,min=0"`
	MeetingURL      string                       `json:"meeting_url,omitempty" validate:"omitempty,max=1000"`
	Platform        string                       `json:"meeting_platform,omitempty" validate:"omitempty,max=50"`
	Language        string                       `json:"language,omitempty" validate:"spoken_language"`
	Format          string                       `json:"format,omitempty" validate:"omitempty,max=20"`
	AudioData       string                       `json:"audio_data" validate:"required"`
	Participants    []meeting.ParticipantRequest `json:"participants,omitempty" validate:"omitempty,dive"`
}

// TranscribeRequest represents a transcription-only invocation
type TranscribeRequest struct {
	AudioData string `json:"audio_data" validate:"required"`
	Language  string `json:"language,omitempty" validate:"spoken_language"`
}
