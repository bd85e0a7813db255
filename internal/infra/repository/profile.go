package repository

import (
	"context"
	"errors"
	"log/slog"

	"rugboost-api/internal/domain/profile"
	"rugboost-api/internal/infra"
	"rugboost-api/internal/infra/db"
	"rugboost-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	findProfileSQL = `
SELECT user_id, full_name, business_name, business_address, business_phone, business_email, logo_url
FROM profiles
WHERE user_id = $1`

	upsertProfileSQL = `
INSERT INTO profiles (user_id, full_name, business_name, business_address, business_phone, business_email, logo_url, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
ON CONFLICT (user_id) DO UPDATE SET
    full_name        = EXCLUDED.full_name,
    business_name    = EXCLUDED.business_name,
    business_address = EXCLUDED.business_address,
    business_phone   = EXCLUDED.business_phone,
    business_email   = EXCLUDED.business_email,
    logo_url         = EXCLUDED.logo_url,
    updated_at       = now()`

	clearProfileLogoSQL = `UPDATE profiles SET logo_url = NULL, updated_at = now() WHERE user_id = $1`
)

type ProfileRepository struct {
	db db.DBTX
}

func NewProfileRepository(dbtx db.DBTX) *ProfileRepository {
	return &ProfileRepository{db: dbtx}
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	var (
		p                               profile.Profile
		fullName, businessName, address pgtype.Text
		phone, businessEmail, logoURL   pgtype.Text
	)
	err := r.db.QueryRow(ctx, findProfileSQL, userID).Scan(
		&p.UserID, &fullName, &businessName, &address, &phone, &businessEmail, &logoURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "profile not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find profile", err)
	}

	p.FullName = pgconv.StringPtr(fullName)
	p.BusinessName = pgconv.StringPtr(businessName)
	p.BusinessAddress = pgconv.StringPtr(address)
	p.BusinessPhone = pgconv.StringPtr(phone)
	p.BusinessEmail = pgconv.StringPtr(businessEmail)
	p.LogoURL = pgconv.StringPtr(logoURL)
	return &p, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, p profile.Profile) error {
	_, err := r.db.Exec(ctx, upsertProfileSQL,
		p.UserID,
		pgconv.Text(p.FullName),
		pgconv.Text(p.BusinessName),
		pgconv.Text(p.BusinessAddress),
		pgconv.Text(p.BusinessPhone),
		pgconv.Text(p.BusinessEmail),
		pgconv.Text(p.LogoURL),
	)
	if err != nil {
		return infra.WrapPgErr(slog.Default(), "failed to save profile", err)
	}
	return nil
}

func (r *ProfileRepository) ClearLogo(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, clearProfileLogoSQL, userID); err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to clear profile logo", err)
	}
	return nil
}
