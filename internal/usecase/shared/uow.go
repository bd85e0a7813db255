package shared

import (
	"context"
	"time"

	"rugboost-api/internal/domain/profile"
	"rugboost-api/internal/domain/registration"
	"rugboost-api/internal/domain/social"
	"rugboost-api/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Invites() InviteRepository
	AuthUsers() AuthUserRepository
	ClientAccounts() ClientAccountRepository
	Roles() RoleRepository
	Profiles() ProfileRepository
}

type InviteRepository interface {
	FindByToken(ctx context.Context, token string) (*registration.Invite, error)
	LinkClient(ctx context.Context, token string, clientID uuid.UUID) error
	MarkPasswordSet(ctx context.Context, token string, at time.Time) error
}

type AuthUserRepository interface {
	SetPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

type ClientAccountRepository interface {
	FindIDByUserID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	Create(ctx context.Context, userID uuid.UUID, email, fullName string) (uuid.UUID, error)
}

type RoleRepository interface {
	Ensure(ctx context.Context, userID uuid.UUID, role user.Role) error
}

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error)
	Upsert(ctx context.Context, p profile.Profile) error
	ClearLogo(ctx context.Context, userID uuid.UUID) error
}

// PostStore holds the social planner's post list as a single document.
type PostStore interface {
	Get(ctx context.Context) ([]social.SocialPost, error)
	Save(ctx context.Context, posts []social.SocialPost) error
}
