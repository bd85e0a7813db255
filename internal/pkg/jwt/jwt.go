package jwt

import (
	"errors"
	"time"

	"rugboost-api/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const clockSkewLeeway = 30 * time.Second

// Claims mirrors the hosted auth platform's access token. UserID is optional;
// when absent the subject carries the user id.
type Claims struct {
	UserID      uuid.UUID   `json:"user_id,omitempty"`
	Email       string      `json:"email,omitempty"`
	Role        string      `json:"role"`
	AppMetadata AppMetadata `json:"app_metadata,omitzero"`
	jwt.RegisteredClaims
}

// AppMetadata is the server-controlled claim block. The platform's own role
// claim is "authenticated" for every signed-in user, so the application role
// is read from here when present.
type AppMetadata struct {
	Role string `json:"role,omitempty"`
}

// SubjectID resolves the authenticated user id from the claims.
func (c *Claims) SubjectID() (uuid.UUID, error) {
	if c.UserID != uuid.Nil {
		return c.UserID, nil
	}
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

// AppRole is app_metadata.role, falling back to the top-level role claim.
func (c *Claims) AppRole() string {
	if c.AppMetadata.Role != "" {
		return c.AppMetadata.Role
	}
	return c.Role
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	audience      string
}

type Option func(*Service)

// WithAudience requires the aud claim on validation and sets it on generated
// tokens. An empty audience disables the check.
func WithAudience(aud string) Option {
	return func(s *Service) {
		s.audience = aud
	}
}

func NewService(secretKey string, tokenDuration time.Duration, opts ...Option) *Service {
	s := &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateToken signs a token the same way the auth platform does. Used by
// tests and local tooling; production tokens come from the platform.
func (s *Service) GenerateToken(userID uuid.UUID, role user.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      userID,
		Role:        role.String(),
		AppMetadata: AppMetadata{Role: role.String()},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkewLeeway),
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
