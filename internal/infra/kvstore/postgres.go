package kvstore

import (
	"context"
	"errors"
	"log/slog"

	"rugboost-api/internal/infra"
	"rugboost-api/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

const (
	pgGetSQL = `SELECT value FROM kv_store WHERE key = $1`
	pgPutSQL = `
INSERT INTO kv_store (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

type PostgresStore struct {
	db db.DBTX
}

func NewPostgresStore(dbtx db.DBTX) *PostgresStore {
	return &PostgresStore{db: dbtx}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	if err := s.db.QueryRow(ctx, pgGetSQL, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to read kv entry", err)
	}
	return []byte(value), nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.Exec(ctx, pgPutSQL, key, string(value)); err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to write kv entry", err)
	}
	return nil
}
