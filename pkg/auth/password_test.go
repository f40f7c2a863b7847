package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()

	t.Run("should never store the raw password", func(t *testing.T) {
		// when
		hash, err := hasher.Hash("pw123")

		// then
		require.NoError(t, err)
		assert.NotEqual(t, "pw123", hash)
		assert.NotContains(t, hash, "pw123")
	})

	t.Run("should compare a matching password", func(t *testing.T) {
		// given
		hash, err := hasher.Hash("pw123")
		require.NoError(t, err)

		// then
		assert.True(t, hasher.Compare(hash, "pw123"))
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		// given
		hash, err := hasher.Hash("pw123")
		require.NoError(t, err)

		// then
		assert.False(t, hasher.Compare(hash, "pw124"))
	})
}
