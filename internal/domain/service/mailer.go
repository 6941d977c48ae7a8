package service

import "context"

// Mailer defines the interface for sending transactional emails.
// Implementations deliver over SMTP or log the message in preview mode.
type Mailer interface {
	// SendActivation sends the account activation email with the activation link.
	SendActivation(ctx context.Context, to, name, activationURL string) error

	// SendPasswordReset sends the password reset email with the reset link.
	SendPasswordReset(ctx context.Context, to, name, resetURL string) error
}
