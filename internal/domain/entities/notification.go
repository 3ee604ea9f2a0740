package entities

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus represents the outcome of one email send attempt
type NotificationStatus string

const (
	NotificationStatusSent   NotificationStatus = "sent"
	NotificationStatusFailed NotificationStatus = "failed"
)

// Notification is an append-only log row for every email attempt.
// Rows are never updated after creation.
type Notification struct {
	ID             uuid.UUID          `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID      uuid.UUID          `json:"meeting_id" gorm:"type:uuid;not null;index"`
	RecipientEmail string             `json:"recipient_email" gorm:"type:varchar(255);not null"`
	Subject        string             `json:"subject" gorm:"type:varchar(500)"`
	Content        string             `json:"content" gorm:"type:text"`
	Status         NotificationStatus `json:"status" gorm:"type:varchar(20);not null"`
	ErrorMessage   string             `json:"error_message,omitempty" gorm:"type:text"`
	CreatedAt      time.Time          `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}

// NewNotification creates a sent-status notification row
func NewNotification(meetingID uuid.UUID, recipient, subject, content string) *Notification {
	return &Notification{
		ID:             uuid.New(),
		MeetingID:      meetingID,
		RecipientEmail: recipient,
		Subject:        subject,
		Content:        content,
		Status:         NotificationStatusSent,
		CreatedAt:      time.Now(),
	}
}

// MarkFailed flips the row to failed with the send error
func (n *Notification) MarkFailed(message string) {
	n.Status = NotificationStatusFailed
	n.ErrorMessage = message
}
