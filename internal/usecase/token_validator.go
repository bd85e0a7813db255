package usecase

import (
	"rugboost-api/internal/domain/user"
	"rugboost-api/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a bearer token to the caller's id and role.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	userID, err := claims.SubjectID()
	if err != nil {
		return uuid.Nil, "", err
	}

	// "authenticated" is the platform default for any signed-in user.
	raw := claims.AppRole()
	if raw == "" || raw == "authenticated" {
		return userID, user.RoleClient, nil
	}
	role, err := user.NewRole(raw)
	if err != nil {
		return uuid.Nil, "", err
	}

	return userID, role, nil
}
