package repository

import (
	"context"
	"log/slog"

	"rugboost-api/internal/domain/user"
	"rugboost-api/internal/infra"
	"rugboost-api/internal/infra/db"

	"github.com/google/uuid"
)

const ensureRoleSQL = `
INSERT INTO user_roles (user_id, role)
VALUES ($1, $2)
ON CONFLICT (user_id, role) DO NOTHING`

type RoleRepository struct {
	db db.DBTX
}

func NewRoleRepository(dbtx db.DBTX) *RoleRepository {
	return &RoleRepository{db: dbtx}
}

// Ensure grants role to the user if it is not already held.
func (r *RoleRepository) Ensure(ctx context.Context, userID uuid.UUID, role user.Role) error {
	if _, err := r.db.Exec(ctx, ensureRoleSQL, userID, role.String()); err != nil {
		return infra.WrapPgErr(slog.Default(), "failed to ensure user role", err)
	}
	return nil
}
