package contact

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/InMan-Labs/inman-website/pkg/apperror"
	"github.com/InMan-Labs/inman-website/pkg/logger"
)

type Outcome string

const (
	// OutcomeSent means the request was emailed to the sales inbox.
	OutcomeSent Outcome = "sent"
	// OutcomeMailto means the visitor's mail client must send it.
	OutcomeMailto Outcome = "mailto"
	// OutcomeDuplicate means the same requester already submitted recently.
	OutcomeDuplicate Outcome = "duplicate"
)

type Result struct {
	Outcome   Outcome
	Reference string
	MailtoURL string
}

type Service struct {
	recipient   string
	sender      Sender
	templates   *Templates
	dedup       DedupStore
	dedupWindow time.Duration
	log         *slog.Logger
}

// NewService wires the submission flow. sender may be nil, in which case
// every accepted request resolves to a mailto: link.
func NewService(recipient string, sender Sender, templates *Templates, dedup DedupStore, dedupWindow time.Duration, log *slog.Logger) *Service {
	return &Service{
		recipient:   recipient,
		sender:      sender,
		templates:   templates,
		dedup:       dedup,
		dedupWindow: dedupWindow,
		log:         log.With(logger.Scope("contact")),
	}
}

// Submit validates req and delivers it. Validation failures are returned as
// an *apperror.Error wrapping ErrMissingFields, ErrInvalidEmail or
// ErrFieldTooLong. A delivery failure falls back to a mailto: link instead of
// failing the visitor.
//
// Duplicates are only suppressed when the service sends mail itself. Without
// a sender nothing has been delivered yet, so every submission gets a mailto
// link. A failed send releases its claim so the visitor can retry.
func (s *Service) Submit(ctx context.Context, req DemoRequest) (*Result, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.ErrValidation.WithMessage(UserMessage(err)).WithInternal(err)
	}

	ref := uuid.NewString()
	log := s.log.With(slog.String("reference", ref), slog.String("source", string(req.Source)))

	mailto := req.MailtoURL(s.recipient)
	if s.sender == nil {
		log.Info("demo request accepted, handing off to mail client")
		return &Result{Outcome: OutcomeMailto, Reference: ref, MailtoURL: mailto}, nil
	}

	key := DedupKey(req)
	claimed := false
	if s.dedup != nil && s.dedupWindow > 0 {
		fresh, err := s.dedup.Claim(ctx, key, s.dedupWindow)
		switch {
		case err != nil:
			log.Warn("dedup check failed, accepting request", logger.Error(err))
		case !fresh:
			log.Info("duplicate demo request suppressed")
			return &Result{Outcome: OutcomeDuplicate}, nil
		default:
			claimed = true
		}
	}

	if err := s.send(ctx, req, ref); err != nil {
		log.Error("failed to email demo request, falling back to mailto", logger.Error(err))
		if claimed {
			if err := s.dedup.Release(ctx, key); err != nil {
				log.Warn("failed to release dedup key", logger.Error(err))
			}
		}
		return &Result{Outcome: OutcomeMailto, Reference: ref, MailtoURL: mailto}, nil
	}

	log.Info("demo request emailed")
	return &Result{Outcome: OutcomeSent, Reference: ref}, nil
}

func (s *Service) send(ctx context.Context, req DemoRequest, ref string) error {
	body, err := s.templates.Render(req, ref)
	if err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	replyTo := mail.Address{Name: req.Name, Address: req.Email}
	_, err = s.sender.Send(ctx, Message{
		To:      s.recipient,
		ReplyTo: replyTo.String(),
		Subject: req.Subject(),
		Text:    body.Text,
		HTML:    body.HTML,
	})
	return err
}
