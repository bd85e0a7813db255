package repository

import (
	"context"
	"log/slog"

	"rugboost-api/internal/infra"
	"rugboost-api/internal/infra/db"

	"github.com/google/uuid"
)

const setPasswordSQL = `
UPDATE auth_users
SET encrypted_password = $2, needs_password_setup = FALSE, updated_at = now()
WHERE id = $1`

type AuthUserRepository struct {
	db db.DBTX
}

func NewAuthUserRepository(dbtx db.DBTX) *AuthUserRepository {
	return &AuthUserRepository{db: dbtx}
}

// SetPassword stores the hash and clears the password-setup flag.
func (r *AuthUserRepository) SetPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	tag, err := r.db.Exec(ctx, setPasswordSQL, userID, passwordHash)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to set user password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "auth user not found", nil)
	}
	return nil
}
