package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"rugboost-api/internal/handler"
	"rugboost-api/internal/infra/db"
	"rugboost-api/internal/infra/repository"
	"rugboost-api/internal/pkg/clock"
	"rugboost-api/internal/pkg/config"
	"rugboost-api/internal/pkg/errs"
	"rugboost-api/internal/pkg/ratelimit"

	"go.uber.org/fx"
)

const (
	rateLimitBackendMemory   = "memory"
	rateLimitBackendPostgres = "postgres"
)

var errUnknownRateLimitBackend = errs.New("unknown rate limit backend")

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewLimiters,
	),
	fx.Invoke(StartRateLimitPruner),
)

func NewLimiters(cfg config.Config, dbtx db.DBTX, clk clock.Clock) (handler.Limiters, error) {
	contact := ratelimit.Policy{Max: cfg.RateLimit.ContactMax, Window: cfg.RateLimit.ContactWindow}
	registration := ratelimit.Policy{Max: cfg.RateLimit.RegistrationMax, Window: cfg.RateLimit.RegistrationWindow}

	switch cfg.RateLimit.Backend {
	case rateLimitBackendMemory:
		return handler.Limiters{
			Contact:      ratelimit.NewMemoryLimiter(contact, clk),
			Registration: ratelimit.NewMemoryLimiter(registration, clk),
		}, nil
	case rateLimitBackendPostgres:
		return handler.Limiters{
			Contact:      repository.NewPostgresLimiter(dbtx, contact, clk),
			Registration: repository.NewPostgresLimiter(dbtx, registration, clk),
		}, nil
	default:
		return handler.Limiters{}, errs.Wrapf(errUnknownRateLimitBackend, "%q", cfg.RateLimit.Backend)
	}
}

// StartRateLimitPruner deletes expired postgres counters on an interval.
// The memory backend prunes itself on every check.
func StartRateLimitPruner(lc fx.Lifecycle, cfg config.Config, dbtx db.DBTX, clk clock.Clock, logger *slog.Logger) {
	if cfg.RateLimit.Backend != rateLimitBackendPostgres {
		return
	}
	pruner := repository.NewRateLimitPruner(dbtx, clk)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.RateLimit.PruneInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						n, err := pruner.Prune(ctx)
						if err != nil {
							logger.Warn("rate limit prune failed", "error", err.Error())
							continue
						}
						if n > 0 {
							logger.Debug("pruned rate limit counters", "count", n)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
