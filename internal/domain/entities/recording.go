package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Recording tracks one captured audio blob for a meeting. The audio itself
// lives in object storage; this row only carries its descriptor.
type Recording struct {
	ID              uuid.UUID                                  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID       uuid.UUID                                  `json:"meeting_id" gorm:"type:uuid;not null;index"`
	FilePath        string                                     `json:"file_path" gorm:"type:varchar(1000);not null"`
	FileSizeBytes   int64                                      `json:"file_size_bytes,omitempty"`
	DurationSeconds int                                        `json:"duration_seconds,omitempty"`
	Format          string                                     `json:"format" gorm:"type:varchar(20);default:'wav'"`
	QualityScore    float64                                    `json:"quality_score,omitempty"`
	Metadata        datatypes.JSONType[map[string]interface{}] `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt       time.Time                                  `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Recording) TableName() string {
	return "recordings"
}

// NewRecording creates a recording descriptor
func NewRecording(meetingID uuid.UUID, filePath, format string, sizeBytes int64) *Recording {
	if format == "" {
		format = "wav"
	}
	return &Recording{
		ID:            uuid.New(),
		MeetingID:     meetingID,
		FilePath:      filePath,
		Format:        format,
		FileSizeBytes: sizeBytes,
		CreatedAt:     time.Now(),
	}
}
