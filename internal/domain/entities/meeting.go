package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingStatus represents the lifecycle state of a meeting
type MeetingStatus string

const (
	MeetingStatusActive   MeetingStatus = "active"
	MeetingStatusArchived MeetingStatus = "archived"
	MeetingStatusDeleted  MeetingStatus = "deleted"
)

// Meeting is the root record every pipeline run and dashboard view hangs off
type Meeting struct {
	ID              uuid.UUID                                  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID          *uuid.UUID                                 `json:"user_id,omitempty" gorm:"type:uuid;index"`
	Title           string                                     `json:"title" gorm:"type:varchar(500);not null"`
	Description     string                                     `json:"description,omitempty" gorm:"type:text"`
	StartTime       time.Time                                  `json:"start_time" gorm:"not null"`
	EndTime         *time.Time                                 `json:"end_time,omitempty"`
	DurationSeconds int                                        `json:"duration_seconds,omitempty"`
	MeetingURL      string                                     `json:"meeting_url,omitempty" gorm:"type:varchar(1000)"`
	Platform        string                                     `json:"meeting_platform" gorm:"type:varchar(50);default:'web'"`
	Status          MeetingStatus                              `json:"status" gorm:"type:varchar(20);default:'active';index"`
	Metadata        datatypes.JSONType[map[string]interface{}] `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt       time.Time                                  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time                                  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a new active meeting
func NewMeeting(title string, startTime time.Time) *Meeting {
	return &Meeting{
		ID:        uuid.New(),
		Title:     title,
		StartTime: startTime,
		Platform:  "web",
		Status:    MeetingStatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// Archive flips the meeting into the archived state. Transitions are
// one-directional: an archived or deleted meeting never becomes active again.
func (m *Meeting) Archive() {
	m.Status = MeetingStatusArchived
	m.UpdatedAt = time.Now()
}

// IsActive reports whether the meeting is still visible in default listings
func (m *Meeting) IsActive() bool {
	return m.Status == MeetingStatusActive
}
