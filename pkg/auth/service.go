package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lilia-Brown/expensy-api/pkg/user"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password, so the response never leaks which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Service interface {
	Authenticate(ctx context.Context, email, password string) (user.User, string, error)
}

type ServiceImpl struct {
	users  user.Repo
	hasher *BcryptHasher
	tokens TokenService
}

func NewService(users user.Repo, hasher *BcryptHasher, tokens TokenService) *ServiceImpl {
	return &ServiceImpl{users: users, hasher: hasher, tokens: tokens}
}

// Authenticate verifies the email/password pair and issues a token on success.
func (s *ServiceImpl) Authenticate(ctx context.Context, email, password string) (user.User, string, error) {
	found, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return user.User{}, "", ErrInvalidCredentials
	} else if err != nil {
		return user.User{}, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Compare(found.PasswordHash, password) {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(found.ID, found.Email)
	if err != nil {
		return user.User{}, "", err
	}
	return found, token, nil
}
