package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Lilia-Brown/expensy-api/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RequireAuth(t *testing.T) {
	tokens := NewTokenService(testSecret, time.Hour)
	middleware := NewMiddleware(tokens)

	var seenIdentity user.Identity
	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		seenIdentity, _ = user.CurrentIdentity(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	call := func(authHeader string) *httptest.ResponseRecorder {
		nextCalled = false
		seenIdentity = user.Identity{}
		req := httptest.NewRequest(http.MethodGet, "/budgets", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		w := httptest.NewRecorder()
		middleware.RequireAuth(next).ServeHTTP(w, req)
		return w
	}

	t.Run("should return 401 when the Authorization header is missing", func(t *testing.T) {
		w := call("")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, nextCalled)
	})

	t.Run("should return 401 when the bearer scheme is missing", func(t *testing.T) {
		w := call("some-token")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, nextCalled)
	})

	t.Run("should return 401 when the token segment is missing", func(t *testing.T) {
		w := call("Bearer ")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, nextCalled)
	})

	t.Run("should return 403 when the token is not valid", func(t *testing.T) {
		w := call("Bearer not-a-token")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, nextCalled)
	})

	t.Run("should return 403 when the token is expired", func(t *testing.T) {
		// given
		expired, err := NewTokenService(testSecret, -time.Minute).Issue("user-1", "a@x.com")
		require.NoError(t, err)

		// when
		w := call("Bearer " + expired)

		// then
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, nextCalled)
	})

	t.Run("should attach the resolved identity and call the next handler", func(t *testing.T) {
		// given
		token, err := tokens.Issue("user-1", "a@x.com")
		require.NoError(t, err)

		// when
		w := call("Bearer " + token)

		// then
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, nextCalled)
		assert.Equal(t, "user-1", seenIdentity.Id)
		assert.Equal(t, "a@x.com", seenIdentity.Email)
	})
}
