package user

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Lilia-Brown/expensy-api/internal/test_utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var db *pgxpool.Pool

func TestMain(m *testing.M) {
	pool, cleanup := test_utils.TestWithDB()
	db = pool
	code := m.Run()
	cleanup()
	os.Exit(code)
}

func testUser() User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return User{
		ID:           uuid.NewString(),
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "$2a$10$" + uuid.NewString(),
		Username:     "tester",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserRepoImpl_Create(t *testing.T) {
	t.Run("should persist a user", func(t *testing.T) {
		// given
		ctx := context.Background()
		repo := NewUserRepo(db)
		user := testUser()

		// when
		created, err := repo.Create(ctx, user)

		// then
		require.NoError(t, err)
		require.Equal(t, user.ID, created.ID)

		stored, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, user.Email, stored.Email)
		require.Equal(t, user.PasswordHash, stored.PasswordHash)
		require.Equal(t, user.Username, stored.Username)
	})

	t.Run("should return ErrEmailExists for a duplicate email", func(t *testing.T) {
		// given
		ctx := context.Background()
		repo := NewUserRepo(db)
		first := testUser()
		_, err := repo.Create(ctx, first)
		require.NoError(t, err)

		duplicate := testUser()
		duplicate.Email = first.Email

		// when
		_, err = repo.Create(ctx, duplicate)

		// then
		require.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestUserRepoImpl_GetByEmail(t *testing.T) {
	t.Run("should find a user by email", func(t *testing.T) {
		// given
		ctx := context.Background()
		repo := NewUserRepo(db)
		user := testUser()
		_, err := repo.Create(ctx, user)
		require.NoError(t, err)

		// when
		found, err := repo.GetByEmail(ctx, user.Email)

		// then
		require.NoError(t, err)
		require.Equal(t, user.ID, found.ID)
	})

	t.Run("should return ErrNotFound for an unknown email", func(t *testing.T) {
		// given
		ctx := context.Background()
		repo := NewUserRepo(db)

		// when
		_, err := repo.GetByEmail(ctx, "nobody@example.com")

		// then
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserRepoImpl_GetByID(t *testing.T) {
	t.Run("should return ErrNotFound for an unknown id", func(t *testing.T) {
		// given
		ctx := context.Background()
		repo := NewUserRepo(db)

		// when
		_, err := repo.GetByID(ctx, uuid.NewString())

		// then
		require.ErrorIs(t, err, ErrNotFound)
	})
}
