package bootstrap

import (
	"rugboost-api/internal/infra/mailer"
	"rugboost-api/internal/pkg/config"
	"rugboost-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		func(cfg config.Config) config.MailConfig { return cfg.Mail },
		fx.Annotate(
			mailer.NewResendClient,
			fx.As(new(commands.Mailer)),
		),
		NewMailSettings,
	),
)

func NewMailSettings(cfg config.Config) commands.MailSettings {
	return commands.MailSettings{
		FromEmail:    cfg.Mail.FromEmail,
		SupportEmail: cfg.Mail.SupportEmail,
	}
}
