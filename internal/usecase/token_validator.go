package usecase

import (
	"eatery-api/internal/pkg/errs"
	"eatery-api/internal/pkg/jwt"
)

type TokenValidator interface {
	ValidateToken(token string) (role string, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (string, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return "", errs.Mark(err, errs.ErrTokenValidation)
	}
	return claims.Role, nil
}
