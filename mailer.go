package inkwell

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/ogulcan/inkwell/views"
)

// Mailer dispatches the owner notification for a contact submission.
// Delivery is fire-and-forget: the caller logs failures and never fails
// the request over them.
type Mailer interface {
	ContactNotification(ctx context.Context, ct views.Contact) error
}

// SMTPMailer sends notifications through an SMTP server using implicit TLS
// (port 465 by default). The submitter's address goes into Reply-To so the
// owner can answer directly.
type SMTPMailer struct {
	cfg MailConfig
}

// NewSMTPMailer creates a mailer for the given SMTP settings.
func NewSMTPMailer(cfg MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) ContactNotification(ctx context.Context, ct views.Contact) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.Username); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(m.cfg.Owner); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	if ct.Email != "" {
		if err := msg.ReplyTo(ct.Email); err != nil {
			return fmt.Errorf("mail reply-to: %w", err)
		}
	}
	msg.Subject("New message from " + ct.Name)
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf("%s\n\nPhone: %s\nEmail: %s", ct.Message, ct.Phone, ct.Email))

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSSLPort(false),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return fmt.Errorf("mail client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}

// noopMailer is used when no SMTP host is configured.
type noopMailer struct{}

func (noopMailer) ContactNotification(context.Context, views.Contact) error {
	return nil
}
