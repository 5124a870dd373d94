// Package email sends transactional appointment emails over SMTP.
package email

import (
	"context"
	"time"

	"salon_backoffice_backend/platform/config"
)

// Sender delivers appointment emails. The composition root passes a nil
// Sender when SMTP is not configured, which disables email entirely.
type Sender interface {
	SendConfirmation(ctx context.Context, to, customerName string, appointmentDate time.Time, serviceNames []string) error
	SendReminder(ctx context.Context, to, customerName string, appointmentDate time.Time, serviceNames []string) error
}

// NewSender creates the configured sender, or nil when email is
// disabled.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.GetEmailEnabled() {
		return nil
	}
	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	)
}
