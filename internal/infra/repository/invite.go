package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rugboost-api/internal/domain/registration"
	"rugboost-api/internal/infra"
	"rugboost-api/internal/infra/db"
	"rugboost-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	findInviteByTokenSQL = `
SELECT id, job_id, access_token, auth_user_id, client_id, invited_email, client_name, expires_at, password_set_at
FROM client_job_access
WHERE access_token = $1
FOR UPDATE`

	linkInviteClientSQL = `
UPDATE client_job_access
SET client_id = $2
WHERE access_token = $1 AND client_id IS NULL`

	markInvitePasswordSetSQL = `
UPDATE client_job_access
SET password_set_at = $2
WHERE access_token = $1`
)

type InviteRepository struct {
	db db.DBTX
}

func NewInviteRepository(dbtx db.DBTX) *InviteRepository {
	return &InviteRepository{db: dbtx}
}

// FindByToken locks the invite row for the rest of the transaction.
func (r *InviteRepository) FindByToken(ctx context.Context, token string) (*registration.Invite, error) {
	var (
		inv                    registration.Invite
		authUserID, clientID   pgtype.UUID
		invitedEmail, clientNm pgtype.Text
		expiresAt, passwordSet pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findInviteByTokenSQL, token).Scan(
		&inv.ID, &inv.JobID, &inv.AccessToken, &authUserID, &clientID,
		&invitedEmail, &clientNm, &expiresAt, &passwordSet,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "invite not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find invite", err)
	}

	inv.AuthUserID = pgconv.UUIDPtr(authUserID)
	inv.ClientID = pgconv.UUIDPtr(clientID)
	inv.InvitedEmail = pgconv.StringPtr(invitedEmail)
	inv.ClientName = pgconv.StringPtr(clientNm)
	inv.ExpiresAt = pgconv.TimePtr(expiresAt)
	inv.PasswordSetAt = pgconv.TimePtr(passwordSet)
	return &inv, nil
}

// LinkClient sets client_id only where it is still empty.
func (r *InviteRepository) LinkClient(ctx context.Context, token string, clientID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, linkInviteClientSQL, token, clientID); err != nil {
		return infra.WrapPgErr(slog.Default(), "failed to link invite to client", err)
	}
	return nil
}

func (r *InviteRepository) MarkPasswordSet(ctx context.Context, token string, at time.Time) error {
	if _, err := r.db.Exec(ctx, markInvitePasswordSetSQL, token, at); err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to mark invite password set", err)
	}
	return nil
}
