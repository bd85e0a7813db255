package bootstrap

import (
	"rugboost-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MailerModule,
	RateLimitModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
