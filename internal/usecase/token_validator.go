package usecase

import (
	"club-booking/internal/domain/auth"
	"club-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, auth.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, auth.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}

	role, err := auth.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return subject, role, nil
}
