package services

import (
	"context"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
)

type AuthService struct {
	owner  domain.Owner
	tokens *TokenService
}

func NewAuthService(owner domain.Owner, tokens *TokenService) *AuthService {
	return &AuthService{
		owner:  owner,
		tokens: tokens,
	}
}

// Login exchanges the owner password for a bearer token.
func (s *AuthService) Login(ctx context.Context, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := s.owner.CheckPassword(password); err != nil {
		return "", err
	}

	return s.tokens.GenerateToken(domain.OwnerSubject)
}
