package notify

import (
	"fmt"
	"strings"

	"github.com/notetakerhq/meeting-notes-api/internal/domain/entities"
)

// renderSummaryBody builds the plain-text email body. Every recipient of a
// dispatch gets the same body.
func renderSummaryBody(meeting *entities.Meeting, summary *entities.Summary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Meeting Summary: %s\n", meeting.Title)
	fmt.Fprintf(&sb, "Date: %s\n\n", meeting.StartTime.Format("Mon, 02 Jan 2006 15:04"))

	fmt.Fprintf(&sb, "Summary\n-------\n%s\n", summary.SummaryText)

	writeSection(&sb, "Key Points", summary.KeyPoints)
	writeSection(&sb, "Action Items", summary.ActionItems)
	writeSection(&sb, "Decisions", summary.Decisions)
	writeSection(&sb, "Next Steps", summary.NextSteps)

	sb.WriteString("\nThis summary was generated automatically.\n")

	return sb.String()
}

func writeSection(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n%s\n%s\n", heading, strings.Repeat("-", len(heading)))
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
}
