//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"rugboost-api/internal/domain/user"
	"rugboost-api/internal/pkg/config"
	"rugboost-api/internal/pkg/cookie"
	"rugboost-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the hosted auth platform does, using the
// secret and audience the server under test validates with.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return h.sign(t, duration, userID, role)
}

// CreateExpiredToken is past the validator's clock skew leeway.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, -5*time.Minute, userID, role)
}

// SessionCookie carries a fresh token the way the web client sends it.
func (h *JWTHelper) SessionCookie(t *testing.T, userID uuid.UUID, role user.Role) *http.Cookie {
	t.Helper()
	return &http.Cookie{Name: cookie.AccessTokenCookieName, Value: h.GenerateToken(t, userID, role)}
}

func (h *JWTHelper) sign(t *testing.T, d time.Duration, userID uuid.UUID, role user.Role) string {
	t.Helper()
	svc := jwt.NewService(h.cfg.Secret, d, jwt.WithAudience(h.cfg.Audience))
	token, err := svc.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
