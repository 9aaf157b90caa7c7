package email

import (
	"context"
	"fmt"
	"time"

	"github.com/resend/resend-go/v3"

	"go-boutique-backend/config"
	"go-boutique-backend/internal/domain"
)

// Service dispatches composed messages through the Resend API.
type Service struct {
	client    *resend.Client
	fromEmail string
	fromName  string
	timeout   time.Duration
}

// NewService creates the email dispatcher from the Resend configuration.
func NewService(cfg *config.Config) *Service {
	return &Service{
		client:    resend.NewClient(cfg.ResendAPIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		timeout:   cfg.SendTimeout,
	}
}

// Send performs one call to the provider. Transport errors and
// provider-reported failures both surface as a non-nil error; the caller
// decides whether the failure is fatal for the request.
func (s *Service) Send(ctx context.Context, msg *domain.OutboundEmail) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := &resend.SendEmailRequest{
		From:    formatFrom(s.fromName, s.fromEmail),
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
	}
	if msg.ReplyTo != "" {
		req.ReplyTo = msg.ReplyTo
	}
	if msg.Courtesy {
		req.Headers = complianceHeaders(s.fromEmail)
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks whether the dispatcher has credentials and a sender.
func (s *Service) IsConfigured() bool {
	return s.fromEmail != ""
}

func formatFrom(name, addr string) string {
	if name != "" {
		return fmt.Sprintf("%s <%s>", name, addr)
	}
	return addr
}

// complianceHeaders marks courtesy messages as one-click unsubscribable.
// Only auto-replies carry these; the internal staff notification does not.
func complianceHeaders(fromEmail string) map[string]string {
	return map[string]string{
		"List-Unsubscribe":      fmt.Sprintf("<mailto:%s?subject=unsubscribe>", fromEmail),
		"List-Unsubscribe-Post": "List-Unsubscribe=One-Click",
	}
}
