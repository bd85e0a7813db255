package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"rugboost-api/internal/infra/db"
	"rugboost-api/internal/infra/repository"
	"rugboost-api/internal/pkg/errs"
	"rugboost-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var errMaxRetriesExceeded = errs.New("transaction failed after max retries")

// RetryPolicy controls how Within retries serialization failures and
// deadlocks. Delays double per attempt with up to 20% jitter.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, BaseDelay: 100 * time.Millisecond}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	policy RetryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, policy: DefaultRetryPolicy}
}

// Within runs fn in one READ COMMITTED transaction. Registration relies on
// this: password, client account, invite link and role commit together.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := pgx.BeginTxFunc(ctx, u.pool, opts, func(ptx pgx.Tx) error {
			return fn(ctx, newScope(ptx))
		})
		if err == nil || !isRetryableError(err) {
			return err
		}
		if attempt >= u.policy.MaxRetries {
			slog.ErrorContext(ctx, "transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := u.policy.backoff(attempt)
		slog.WarnContext(ctx, "retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// WithDB runs fn against the pool; each statement commits on its own.
func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, newScope(u.pool))
}

func (p RetryPolicy) backoff(attempt int) time.Duration {
	wait := p.BaseDelay << attempt
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

// scope hands out repositories bound to one connection or transaction.
type scope struct {
	dbtx db.DBTX

	invites        shared.InviteRepository
	authUsers      shared.AuthUserRepository
	clientAccounts shared.ClientAccountRepository
	roles          shared.RoleRepository
	profiles       shared.ProfileRepository
}

func newScope(dbtx db.DBTX) *scope {
	return &scope{dbtx: dbtx}
}

func (s *scope) Invites() shared.InviteRepository {
	if s.invites == nil {
		s.invites = repository.NewInviteRepository(s.dbtx)
	}
	return s.invites
}

func (s *scope) AuthUsers() shared.AuthUserRepository {
	if s.authUsers == nil {
		s.authUsers = repository.NewAuthUserRepository(s.dbtx)
	}
	return s.authUsers
}

func (s *scope) ClientAccounts() shared.ClientAccountRepository {
	if s.clientAccounts == nil {
		s.clientAccounts = repository.NewClientAccountRepository(s.dbtx)
	}
	return s.clientAccounts
}

func (s *scope) Roles() shared.RoleRepository {
	if s.roles == nil {
		s.roles = repository.NewRoleRepository(s.dbtx)
	}
	return s.roles
}

func (s *scope) Profiles() shared.ProfileRepository {
	if s.profiles == nil {
		s.profiles = repository.NewProfileRepository(s.dbtx)
	}
	return s.profiles
}
