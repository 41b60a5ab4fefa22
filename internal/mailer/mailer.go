package mailer

import "context"

// Mailer delivers account emails. The only implementation talks SMTP;
// tests substitute a recording fake.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, token string) error
}
