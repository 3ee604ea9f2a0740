package meeting

import (
	"time"
)

// ParticipantRequest represents one participant on meeting creation or a
// pipeline invocation
type ParticipantRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Role  string `json:"role,omitempty" validate:"omitempty,oneof=organizer presenter attendee"`
}

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	UserID          *string              `json:"user_id,omitempty" validate:"omitempty,uuid"`
	Title           string               `json:"title" validate:"required,min=1,max=500"`
	Description     string               `json:"description,omitempty"`
	StartTime       *time.Time           `json:"start_time,omitempty"`
	EndTime         *time.Time           `json:"end_time,omitempty"`
	DurationSeconds int                  `json:"duration_seconds,omitempty" validate:"omitempty,min=0"`
	MeetingURL      string               `json:"meeting_url,omitempty" validate:"omitempty,max=1000"`
	Platform        string               `json:"meeting_platform,omitempty" validate:"omitempty,max=50"`
	Participants    []ParticipantRequest `json:"participants,omitempty" validate:"omitempty,dive"`
}

// UpdateMeetingRequest represents a partial meeting patch. Only fields that
// are present in the payload make it into the update map.
type UpdateMeetingRequest struct {
	Title           *string    `json:"title,omitempty" validate:"omitempty,min=1,max=500"`
	Description     *string    `json:"description,omitempty"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationSeconds *int       `json:"duration_seconds,omitempty" validate:"omitempty,min=0"`
	MeetingURL      *string    `json:"meeting_url,omitempty" validate:"omitempty,max=1000"`
	Platform        *string    `json:"meeting_platform,omitempty" validate:"omitempty,max=50"`
	Status          *string    `json:"status,omitempty" validate:"omitempty,oneof=archived"`
}

// Updates builds the column patch from the provided fields only
func (r *UpdateMeetingRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})

	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.StartTime != nil {
		updates["start_time"] = *r.StartTime
	}
	if r.EndTime != nil {
		updates["end_time"] = *r.EndTime
	}
	if r.DurationSeconds != nil {
		updates["duration_seconds"] = *r.DurationSeconds
	}
	if r.MeetingURL != nil {
		updates["meeting_url"] = *r.MeetingURL
	}
	if r.Platform != nil {
		updates["platform"] = *r.Platform
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}

	return updates
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	UserID *string `query:"userId" validate:"omitempty,uuid"`
	Limit  int     `query:"limit" validate:"omitempty,min=1,max=200"`
}
