package commands

import (
	"context"
	"log/slog"

	"rugboost-api/internal/domain/contact"
	"rugboost-api/internal/domain/user"
	"rugboost-api/internal/infra/mailer"
	"rugboost-api/internal/pkg/errs"
)

var ErrContactDelivery = errs.New("Failed to send message")

//go:generate mockgen -source=contact.go -destination=../../../tests/mock/commands/contact_mock.go -package=commandsmock

type SubmitContactResult struct {
	// Dropped is true when the honeypot tripped and nothing was sent.
	Dropped bool
	EmailID string
}

type ContactCommands interface {
	Submit(ctx context.Context, sub contact.Submission) (*SubmitContactResult, error)
}

type contactCommandsImpl struct {
	mailer   Mailer
	settings MailSettings
}

func NewContactCommands(m Mailer, settings MailSettings) ContactCommands {
	return &contactCommandsImpl{mailer: m, settings: settings}
}

func (c *contactCommandsImpl) Submit(ctx context.Context, sub contact.Submission) (*SubmitContactResult, error) {
	if sub.IsSpam() {
		slog.InfoContext(ctx, "contact submission dropped by honeypot")
		return &SubmitContactResult{Dropped: true}, nil
	}

	msg, err := contact.NewMessage(sub)
	if err != nil {
		return nil, err
	}

	html, err := mailer.RenderContact(mailer.ContactData{
		Name:    msg.Name(),
		Email:   msg.Email(),
		Subject: msg.Subject(),
		Message: msg.Body(),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrContactDelivery)
	}

	id, err := c.mailer.Send(ctx, mailer.Email{
		From:    "RugBoost Contact <" + c.settings.FromEmail + ">",
		To:      []string{c.settings.SupportEmail},
		ReplyTo: msg.Email(),
		Subject: "[Contact Form] " + msg.Subject(),
		HTML:    html,
	})
	if err != nil {
		slog.ErrorContext(ctx, "contact email failed",
			"sender", user.Mask(msg.Email(), 3),
			"error", err.Error())
		return nil, errs.Mark(err, ErrContactDelivery)
	}

	slog.InfoContext(ctx, "contact email sent", "email_id", id)
	return &SubmitContactResult{EmailID: id}, nil
}
