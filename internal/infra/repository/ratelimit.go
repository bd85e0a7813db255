package repository

import (
	"context"
	"log/slog"
	"time"

	"rugboost-api/internal/infra"
	"rugboost-api/internal/infra/db"
	"rugboost-api/internal/pkg/clock"
	"rugboost-api/internal/pkg/ratelimit"
)

// A single upsert both reads and advances the counter, so concurrent
// requests for one key serialize on the row lock. Expired windows restart at 1.
const hitRateLimitSQL = `
INSERT INTO rate_limits (key, count, reset_at)
VALUES ($1, 1, $3)
ON CONFLICT (key) DO UPDATE SET
    count    = CASE WHEN rate_limits.reset_at < $2 THEN 1 ELSE rate_limits.count + 1 END,
    reset_at = CASE WHEN rate_limits.reset_at < $2 THEN EXCLUDED.reset_at ELSE rate_limits.reset_at END
RETURNING count, reset_at`

const pruneRateLimitsSQL = `DELETE FROM rate_limits WHERE reset_at < $1`

// PostgresLimiter shares counters across instances through the rate_limits
// table. Denied attempts are counted as well.
type PostgresLimiter struct {
	db     db.DBTX
	policy ratelimit.Policy
	clock  clock.Clock
}

func NewPostgresLimiter(dbtx db.DBTX, policy ratelimit.Policy, clk clock.Clock) *PostgresLimiter {
	return &PostgresLimiter{db: dbtx, policy: policy, clock: clk}
}

func (l *PostgresLimiter) Allow(ctx context.Context, key string) (ratelimit.Decision, error) {
	now := l.clock.Now()

	var (
		count   int
		resetAt time.Time
	)
	err := l.db.QueryRow(ctx, hitRateLimitSQL, key, now, now.Add(l.policy.Window)).Scan(&count, &resetAt)
	if err != nil {
		return ratelimit.Decision{}, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to record rate limit hit", err)
	}

	remaining := l.policy.Max - count
	if remaining < 0 {
		remaining = 0
	}
	return ratelimit.Decision{
		Allowed:   count <= l.policy.Max,
		Remaining: remaining,
		ResetIn:   resetAt.Sub(now),
	}, nil
}

// RateLimitPruner deletes expired windows for every scope sharing the table.
type RateLimitPruner struct {
	db    db.DBTX
	clock clock.Clock
}

func NewRateLimitPruner(dbtx db.DBTX, clk clock.Clock) *RateLimitPruner {
	return &RateLimitPruner{db: dbtx, clock: clk}
}

func (p *RateLimitPruner) Prune(ctx context.Context) (int64, error) {
	tag, err := p.db.Exec(ctx, pruneRateLimitsSQL, p.clock.Now())
	if err != nil {
		return 0, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to prune rate limits", err)
	}
	return tag.RowsAffected(), nil
}
