package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/notetakerhq/meeting-notes-api/internal/domain/entities"
	"github.com/notetakerhq/meeting-notes-api/internal/domain/repositories"
	"github.com/notetakerhq/meeting-notes-api/pkg/mail"
)

// Result summarizes one dispatch fan-out
type Result struct {
	Sent   int      `json:"sent"`
	Failed int      `json:"failed"`
	Errors []string `json:"errors,omitempty"`
}

// Dispatcher emails the meeting summary to every participant with an email
// address and logs each attempt to the notification table.
type Dispatcher struct {
	mailer        mail.Mailer
	notifications repositories.NotificationRepository
	logger        *zap.Logger
}

// NewDispatcher creates a notification dispatcher
func NewDispatcher(mailer mail.Mailer, notifications repositories.NotificationRepository, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		mailer:        mailer,
		notifications: notifications,
		logger:        logger,
	}
}

// Dispatch sends the summary to all recipients concurrently and waits for
// every send to settle. One failing recipient never cancels the others.
// Zero recipients is a quiet no-op.
func (d *Dispatcher) Dispatch(ctx context.Context, meeting *entities.Meeting, summary *entities.Summary, participants []*entities.Participant) Result {
	recipients := make([]*entities.Participant, 0, len(participants))
	for _, p := range participants {
		if p.Email != "" {
			recipients = append(recipients, p)
		}
	}
	if len(recipients) == 0 {
		if d.logger != nil {
			d.logger.Info("no participants with email, skipping notifications",
				zap.String("meeting_id", meeting.ID.String()),
			)
		}
		return Result{}
	}

	subject := "Meeting Summary: " + meeting.Title
	body := renderSummaryBody(meeting, summary)

	sendErrs := make([]error, len(recipients))
	var wg sync.WaitGroup
	for i, recipient := range recipients {
		wg.Add(1)
		go func(slot int, to string) {
			defer wg.Done()
			sendErrs[slot] = d.mailer.Send(to, subject, body)
		}(i, recipient.Email)
	}
	wg.Wait()

	var res Result
	for i, recipient := range recipients {
		row := entities.NewNotification(meeting.ID, recipient.Email, subject, body)
		if err := sendErrs[i]; err != nil {
			row.MarkFailed(err.Error())
			res.Failed++
			res.Errors = append(res.Errors, err.Error())
			if d.logger != nil {
				d.logger.Warn("notification send failed",
					zap.String("meeting_id", meeting.ID.String()),
					zap.String("recipient", recipient.Email),
					zap.Error(err),
				)
			}
		} else {
			res.Sent++
		}

		if err := d.notifications.Append(ctx, row); err != nil && d.logger != nil {
			d.logger.Error("failed to append notification log row",
				zap.String("meeting_id", meeting.ID.String()),
				zap.String("recipient", recipient.Email),
				zap.Error(err),
			)
		}
	}

	if d.logger != nil {
		d.logger.Info("notifications dispatched",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Int("sent", res.Sent),
			zap.Int("failed", res.Failed),
		)
	}

	return res
}
