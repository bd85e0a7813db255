package repository

import (
	"context"
	"errors"
	"log/slog"

	"rugboost-api/internal/infra"
	"rugboost-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	findClientAccountIDSQL = `SELECT id FROM client_accounts WHERE user_id = $1`

	// DO NOTHING keeps a concurrent insert from aborting the surrounding
	// transaction; the caller re-reads on conflict.
	createClientAccountSQL = `
INSERT INTO client_accounts (user_id, email, full_name)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO NOTHING
RETURNING id`
)

type ClientAccountRepository struct {
	db db.DBTX
}

func NewClientAccountRepository(dbtx db.DBTX) *ClientAccountRepository {
	return &ClientAccountRepository{db: dbtx}
}

func (r *ClientAccountRepository) FindIDByUserID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	if err := r.db.QueryRow(ctx, findClientAccountIDSQL, userID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "client account not found", err)
		}
		return uuid.Nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find client account", err)
	}
	return id, nil
}

// Create inserts the account. A row that already exists for userID is
// reported as KindDuplicateKey.
func (r *ClientAccountRepository) Create(ctx context.Context, userID uuid.UUID, email, fullName string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := r.db.QueryRow(ctx, createClientAccountSQL, userID, email, fullName).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "client account already exists", err)
		}
		return uuid.Nil, infra.WrapPgErr(slog.Default(), "failed to create client account", err)
	}
	return id, nil
}
