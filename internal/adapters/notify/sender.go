package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/staffsight/staffsight/pkg/logger"
	"github.com/staffsight/staffsight/pkg/metrics"
)

// Sender delivers a prepared draft to a recipient address.
type Sender interface {
	Send(ctx context.Context, to string, draft Draft) error
}

// SendGridSender delivers drafts through the SendGrid API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    logger.Logger
}

// SendGridOption applies a configuration option to the SendGridSender.
type SendGridOption func(*SendGridSender)

// WithSendGridLogger sets a custom logger for the sender.
func WithSendGridLogger(l logger.Logger) SendGridOption {
	return func(s *SendGridSender) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSendGridClient overrides the API client. Used by tests.
func WithSendGridClient(c *sendgrid.Client) SendGridOption {
	return func(s *SendGridSender) {
		if c != nil {
			s.client = c
		}
	}
}

// NewSendGridSender constructs a sender with the given credentials and
// sender identity.
func NewSendGridSender(apiKey, fromEmail, fromName string, opts ...SendGridOption) *SendGridSender {
	s := &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Send delivers the draft as a plain-text email.
func (s *SendGridSender) Send(ctx context.Context, to string, draft Draft) error {
	if to == "" {
		return ErrMissingRecipient
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmailPlainText(from, draft.Subject, recipient, draft.Body)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSendEmail, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: status %d: %s", ErrSendEmail, resp.StatusCode, resp.Body)
	}

	metrics.RecordAlertEmailSent()
	s.logger.Info(ctx, "alert email sent",
		logger.String("kind", string(draft.Kind)),
		logger.String("employeeID", draft.EmployeeID),
	)
	return nil
}
