package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"rugboost-api/internal/infra/db"
	"rugboost-api/internal/pkg/config"
	"rugboost-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const dbConnectTimeout = 15 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB applies pending migrations (unless DB_MIGRATE=false) before opening
// the pool, so handlers never see an old schema.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.DB.Migrate {
		start := time.Now()
		if err := db.Migrate(cfg.DB.BuildDSN()); err != nil {
			return nil, errs.Wrap(err, "migrate database")
		}
		logger.Info("database schema up to date", "duration", time.Since(start))
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()
	pool, closePool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, errs.Wrap(err, "connect database")
	}
	logger.Info("database connected", "host", cfg.DB.Host, "database", cfg.DB.DBName)

	lc.Append(fx.StopHook(closePool))
	return pool, nil
}
