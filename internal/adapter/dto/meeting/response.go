package meeting

import (
	"github.com/notetakerhq/meeting-notes-api/internal/domain/entities"
)

// MeetingListResponse represents a list of meetings
type MeetingListResponse struct {
	Meetings []*entities.Meeting `json:"meetings"`
	Total    int                 `json:"total"`
}

// ArchiveAllResponse represents the result of a bulk archive
type ArchiveAllResponse struct {
	Archived int64 `json:"archived"`
}

// DeleteMeetingResponse represents the result of archiving or deleting one
// meeting
type DeleteMeetingResponse struct {
	MeetingID string `json:"meeting_id"`
	Status    string `json:"status"`
}
