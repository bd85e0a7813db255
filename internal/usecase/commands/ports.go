package commands

import (
	"context"

	"rugboost-api/internal/infra/mailer"
)

// Mailer delivers one email. Implementations must not retry.
type Mailer interface {
	Send(ctx context.Context, msg mailer.Email) (string, error)
}

// MailSettings are the fixed addresses used by outgoing mail.
type MailSettings struct {
	FromEmail    string
	SupportEmail string
}
