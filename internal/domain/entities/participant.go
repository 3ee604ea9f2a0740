package entities

import (
	"time"

	"github.com/google/uuid"
)

// ParticipantRole represents a participant's role in a meeting
type ParticipantRole string

const (
	ParticipantRoleOrganizer ParticipantRole = "organizer"
	ParticipantRolePresenter ParticipantRole = "presenter"
	ParticipantRoleAttendee  ParticipantRole = "attendee"
)

// Participant is one attendee row attached to a meeting
type Participant struct {
	ID              uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID       uuid.UUID       `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Name            string          `json:"name" gorm:"type:varchar(255);not null"`
	Email           string          `json:"email,omitempty" gorm:"type:varchar(255)"`
	Role            ParticipantRole `json:"role" gorm:"type:varchar(20);default:'attendee'"`
	JoinTime        *time.Time      `json:"join_time,omitempty"`
	LeaveTime       *time.Time      `json:"leave_time,omitempty"`
	DurationSeconds int             `json:"duration_seconds,omitempty"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Participant) TableName() string {
	return "participants"
}

// NewParticipant creates a participant with the default attendee role
func NewParticipant(meetingID uuid.UUID, name string) *Participant {
	return &Participant{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Name:      name,
		Role:      ParticipantRoleAttendee,
		CreatedAt: time.Now(),
	}
}

// Leave records the leave time and derives the attended duration
func (p *Participant) Leave(at time.Time) {
	p.LeaveTime = &at
	if p.JoinTime != nil {
		p.DurationSeconds = int(at.Sub(*p.JoinTime).Seconds())
	}
}
