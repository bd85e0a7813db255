//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures can run
// inside a test transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateAuthUser inserts a platform auth user that still needs a password.
func CreateAuthUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, "INSERT INTO auth_users (id, email) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING",
		userID, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM auth_users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

type InviteOptions struct {
	AuthUserID   *uuid.UUID
	InvitedEmail string
	ClientName   string
	ExpiresAt    *time.Time
}

// CreateInvite inserts a client_job_access row and returns its access token.
func CreateInvite(t *testing.T, db DBLike, opts InviteOptions) string {
	t.Helper()

	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	var invitedEmail, clientName *string
	if opts.InvitedEmail != "" {
		invitedEmail = &opts.InvitedEmail
	}
	if opts.ClientName != "" {
		clientName = &opts.ClientName
	}

	_, err := db.Exec(context.Background(), `
		INSERT INTO client_job_access (job_id, access_token, auth_user_id, invited_email, client_name, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), token, opts.AuthUserID, invitedEmail, clientName, opts.ExpiresAt)
	require.NoError(t, err)

	return token
}

// UserRoles lists the roles granted to a user.
func UserRoles(t *testing.T, db *pgxpool.Pool, userID uuid.UUID) []string {
	t.Helper()

	rows, err := db.Query(context.Background(), "SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role", userID)
	require.NoError(t, err)
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var role string
		require.NoError(t, rows.Scan(&role))
		roles = append(roles, role)
	}
	require.NoError(t, rows.Err())
	return roles
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
