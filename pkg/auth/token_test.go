package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Run("should verify a freshly issued token", func(t *testing.T) {
		// given
		tokens := NewTokenService(testSecret, time.Hour)

		// when
		token, err := tokens.Issue("user-1", "a@x.com")
		require.NoError(t, err)
		claims, err := tokens.Verify(token)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "a@x.com", claims.Email)
	})

	t.Run("should embed an expiry one TTL from issuance", func(t *testing.T) {
		// given
		tokens := NewTokenService(testSecret, time.Hour)

		// when
		token, err := tokens.Issue("user-1", "a@x.com")
		require.NoError(t, err)
		claims, err := tokens.Verify(token)
		require.NoError(t, err)

		// then
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
	})

	t.Run("should fail with ErrTokenExpired after expiry", func(t *testing.T) {
		// given
		tokens := NewTokenService(testSecret, -time.Minute)
		token, err := tokens.Issue("user-1", "a@x.com")
		require.NoError(t, err)

		// when
		_, err = tokens.Verify(token)

		// then
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("should fail with ErrTokenInvalid for a token signed with a different secret", func(t *testing.T) {
		// given
		tokens := NewTokenService(testSecret, time.Hour)
		otherTokens := NewTokenService("a-different-secret", time.Hour)
		token, err := otherTokens.Issue("user-1", "a@x.com")
		require.NoError(t, err)

		// when
		_, err = tokens.Verify(token)

		// then
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("should fail with ErrTokenInvalid for a malformed token", func(t *testing.T) {
		// given
		tokens := NewTokenService(testSecret, time.Hour)

		// when
		_, err := tokens.Verify("not-a-token")

		// then
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}
