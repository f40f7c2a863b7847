package auth

import (
	"context"
	"testing"
	"time"

	"github.com/Lilia-Brown/expensy-api/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthService(t *testing.T) (*ServiceImpl, *user.StubUserRepo) {
	t.Helper()
	repo := user.NewStubUserRepo()
	hasher := NewBcryptHasher()
	tokens := NewTokenService(testSecret, time.Hour)
	service := NewService(repo, hasher, tokens)

	hash, err := hasher.Hash("pw123")
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), user.User{
		ID:           "user-1",
		Email:        "a@x.com",
		PasswordHash: hash,
	})
	require.NoError(t, err)

	return service, repo
}

func TestServiceImpl_Authenticate(t *testing.T) {
	t.Run("should return the user and a verifiable token on success", func(t *testing.T) {
		// given
		service, _ := setupAuthService(t)

		// when
		authenticated, token, err := service.Authenticate(context.Background(), "a@x.com", "pw123")

		// then
		assert.NoError(t, err)
		assert.Equal(t, "user-1", authenticated.ID)
		claims, err := NewTokenService(testSecret, time.Hour).Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "a@x.com", claims.Email)
	})

	t.Run("should fail identically for an unknown email and a wrong password", func(t *testing.T) {
		// given
		service, _ := setupAuthService(t)

		// when
		_, _, unknownEmailErr := service.Authenticate(context.Background(), "nobody@x.com", "pw123")
		_, _, wrongPasswordErr := service.Authenticate(context.Background(), "a@x.com", "wrong")

		// then
		assert.ErrorIs(t, unknownEmailErr, ErrInvalidCredentials)
		assert.ErrorIs(t, wrongPasswordErr, ErrInvalidCredentials)
		assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
	})
}
