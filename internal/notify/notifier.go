// Package notify abstracts outbound notifications. The only notification
// the system sends is the password-reset link; delivery is a collaborator
// concern, so the controller depends on the interface and the shipped
// implementation just records the request.
package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// Notifier delivers out-of-band notifications to users.
type Notifier interface {
	// SendPasswordReset delivers a reset link to the address. The address
	// is known to belong to a registered account when this is called.
	SendPasswordReset(ctx context.Context, email string) error
}

// LogNotifier implements Notifier by logging the request. No email is ever
// sent; this stands in for a real delivery service.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a notifier that logs instead of delivering.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With().Str("service", "notify").Logger(),
	}
}

// SendPasswordReset logs the reset request.
func (n *LogNotifier) SendPasswordReset(ctx context.Context, email string) error {
	n.logger.Info().Str("email", email).Msg("password reset link requested")
	return nil
}

var _ Notifier = (*LogNotifier)(nil)
