package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fitness-platform-api/internal/application/ports"
	"fitness-platform-api/internal/domain/user"
	"fitness-platform-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrAccountDeactivated    = errors.New("account is deactivated")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(
	jwtService *jwt.Service,
) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
	}
}

func (as *AuthService) GenerateToken(u *user.User, requestPassword string) (string, error) {
	if u.PasswordHash == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(requestPassword)); err != nil {
		return "", ErrInvalidCredentials
	}
	if !u.IsActive {
		return "", ErrAccountDeactivated
	}

	token, err := as.jwtService.GenerateJWT(u.UUID.String(), u.Type, time.Hour)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
