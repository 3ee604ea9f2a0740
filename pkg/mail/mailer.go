package mail

import (
	"gopkg.in/gomail.v2"

	"github.com/notetakerhq/meeting-notes-api/pkg/config"
)

// Mailer sends one plain-text message to one recipient
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer implements Mailer over SMTP
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates an SMTP mailer from config
func NewSMTPMailer(cfg *config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send delivers a plain-text message. Dialing happens per message.
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
