package commands

import (
	"context"

	"eatery-api/internal/pkg/config"
	"eatery-api/internal/pkg/errs"
	"eatery-api/internal/pkg/jwt"
	"eatery-api/internal/pkg/password"

	"github.com/google/uuid"
)

type LoginResult struct {
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, pass string) (*LoginResult, error)
}

type authCommandsImpl struct {
	passwordHash string
	jwtService   *jwt.Service
}

// NewAuthCommands hashes the configured admin password once at startup so
// the plaintext never sits in memory beyond bootstrap.
func NewAuthCommands(cfg config.AdminConfig, jwtService *jwt.Service) (AuthCommands, error) {
	hash, err := password.HashPassword(cfg.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash admin password")
	}

	return &authCommandsImpl{
		passwordHash: hash,
		jwtService:   jwtService,
	}, nil
}

func (a *authCommandsImpl) Login(_ context.Context, pass string) (*LoginResult, error) {
	if err := password.ComparePassword(a.passwordHash, pass); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(uuid.New(), jwt.RoleAdmin)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenGeneration)
	}

	return &LoginResult{AccessToken: token}, nil
}
