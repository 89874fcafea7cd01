package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/InMan-Labs/inman-website/internal/config"
	"github.com/InMan-Labs/inman-website/pkg/logger"
)

const sendTimeout = 30 * time.Second

// Message is an outgoing notification email.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers a message and returns the provider's message ID.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// MailgunSender sends emails via the Mailgun API.
type MailgunSender struct {
	cfg    *config.EmailConfig
	log    *slog.Logger
	client *mailgun.MailgunImpl
}

// NewMailgunSender returns nil when Mailgun is not configured; callers then
// fall back to mailto: links.
func NewMailgunSender(cfg *config.EmailConfig, log *slog.Logger) *MailgunSender {
	if !cfg.IsConfigured() {
		return nil
	}

	client := mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey)
	if cfg.MailgunAPIBase != "" {
		client.SetAPIBase(cfg.MailgunAPIBase)
	}

	return &MailgunSender{
		cfg:    cfg,
		log:    log.With(logger.Scope("contact.mailgun")),
		client: client,
	}
}

func (s *MailgunSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := validateEmailConfig(s.cfg); err != nil {
		return "", err
	}

	from := fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	message := s.client.NewMessage(from, msg.Subject, msg.Text, msg.To)
	if msg.HTML != "" {
		message.SetHtml(msg.HTML)
	}
	if msg.ReplyTo != "" {
		message.SetReplyTo(msg.ReplyTo)
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, messageID, err := s.client.Send(sendCtx, message)
	if err != nil {
		return "", fmt.Errorf("mailgun send: %w", err)
	}

	s.log.Info("email sent",
		slog.String("to", msg.To),
		slog.String("message_id", messageID))

	return messageID, nil
}

func validateEmailConfig(cfg *config.EmailConfig) error {
	if cfg.MailgunDomain == "" {
		return fmt.Errorf("MAILGUN_DOMAIN is required")
	}
	if cfg.MailgunAPIKey == "" {
		return fmt.Errorf("MAILGUN_API_KEY is required")
	}
	if cfg.FromEmail == "" {
		return fmt.Errorf("EMAIL_FROM_ADDRESS is required")
	}
	if cfg.FromName == "" {
		return fmt.Errorf("EMAIL_FROM_NAME is required")
	}
	return nil
}
