package expense

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Lilia-Brown/expensy-api/internal/test_utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
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

// createFixtureUser inserts a user row to satisfy the expenses foreign key.
func createFixtureUser(t *testing.T) string {
	t.Helper()
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, username, user_image_url, created_at, updated_at)
			VALUES ($1, $2, $3, '', '', $4, $4)`,
		id, id+"@example.com", "hash", now)
	require.NoError(t, err)
	return id
}

// createFixtureCategory inserts a category row to satisfy the expenses foreign key.
func createFixtureCategory(t *testing.T) string {
	t.Helper()
	id := uuid.NewString()
	_, err := db.Exec(context.Background(),
		`INSERT INTO categories (id, name) VALUES ($1, $2)`,
		id, "Category-"+id[0:8])
	require.NoError(t, err)
	return id
}

func fixtureExpense(userId, categoryId string) Expense {
	return Expense{
		ID:         uuid.NewString(),
		Amount:     decimal.NewFromFloat(4.50),
		Currency:   "EUR",
		Date:       time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
		City:       "Paris",
		UserID:     userId,
		CategoryID: categoryId,
	}
}

func TestExpenseRepoImpl_Store(t *testing.T) {
	t.Run("should persist an expense and read it back", func(t *testing.T) {
		// given
		ctx := context.Background()
		repo := NewExpenseRepo(db)
		userId := createFixtureUser(t)
		categoryId := createFixtureCategory(t)
		lat, long := 48.8566, 2.3522
		expense := fixtureExpense(userId, categoryId)
		expense.Description = "Coffee"
		expense.Latitude = &lat
		expense.Longitude = &long

		// when
		_, err := repo.Store(ctx, expense)

		// then
		require.NoError(t, err)
		stored, err := repo.GetByID(ctx, userId, expense.ID)
		require.NoError(t, err)
		require.True(t, expense.Amount.Equal(stored.Amount))
		require.Equal(t, expense.Description, stored.Description)
		require.Equal(t, expense.Date, stored.Date.UTC())
		require.NotNil(t, stored.Latitude)
		require.Equal(t, lat, *stored.Latitude)
		require.Equal(t, categoryId, stored.CategoryID)
	})

	t.Run("should return ErrInvalidReference for an unknown category", func(t *testing.T) {
		// given
		ctx := context.Background()
		repo := NewExpenseRepo(db)
		userId := createFixtureUser(t)
		expense := fixtureExpense(userId, uuid.NewString())

		// when
		_, err := repo.Store(ctx, expense)

		// then
		require.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("should return ErrInvalidReference for an unknown owner", func(t *testing.T) {
		// given
		ctx := context.Background()
		repo := NewExpenseRepo(db)
		categoryId := createFixtureCategory(t)
		expense := fixtureExpense(uuid.NewString(), categoryId)

		// when
		_, err := repo.Store(ctx, expense)

		// then
		require.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestExpenseRepoImpl_GetAll(t *testing.T) {
	seed := func(t *testing.T) (string, string, string, []Expense) {
		t.Helper()
		ctx := context.Background()
		repo := NewExpenseRepo(db)
		userId := createFixtureUser(t)
		otherUser := createFixtureUser(t)
		foodCategory := createFixtureCategory(t)
		travelCategory := createFixtureCategory(t)

		paris := fixtureExpense(userId, foodCategory)
		lyon := fixtureExpense(userId, travelCategory)
		lyon.City = "Lyon"
		lyon.Date = time.Date(2024, 3, 15, 19, 30, 0, 0, time.UTC)
		late := fixtureExpense(userId, foodCategory)
		late.Date = time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC)
		foreign := fixtureExpense(otherUser, foodCategory)

		for _, e := range []Expense{paris, lyon, late, foreign} {
			_, err := repo.Store(ctx, e)
			require.NoError(t, err)
		}
		return userId, foodCategory, travelCategory, []Expense{paris, lyon, late}
	}

	t.Run("should return only the user's expenses newest first", func(t *testing.T) {
		// given
		userId, _, _, seeded := seed(t)
		repo := NewExpenseRepo(db)

		// when
		expenses, err := repo.GetAll(context.Background(), userId, Filter{})

		// then
		require.NoError(t, err)
		require.Len(t, expenses, 3)
		require.Equal(t, seeded[2].ID, expenses[0].ID)
		require.Equal(t, seeded[1].ID, expenses[1].ID)
		require.Equal(t, seeded[0].ID, expenses[2].ID)
	})

	t.Run("should filter by city and category", func(t *testing.T) {
		// given
		userId, _, travelCategory, seeded := seed(t)
		repo := NewExpenseRepo(db)

		// when
		byCity, err := repo.GetAll(context.Background(), userId, Filter{City: "Lyon"})
		require.NoError(t, err)
		byCategory, err := repo.GetAll(context.Background(), userId, Filter{CategoryID: travelCategory})
		require.NoError(t, err)

		// then
		require.Len(t, byCity, 1)
		require.Equal(t, seeded[1].ID, byCity[0].ID)
		require.Len(t, byCategory, 1)
		require.Equal(t, seeded[1].ID, byCategory[0].ID)
	})

	t.Run("should include expenses exactly on the range bounds", func(t *testing.T) {
		// given
		userId, _, _, seeded := seed(t)
		repo := NewExpenseRepo(db)

		// when
		expenses, err := repo.GetAll(context.Background(), userId, Filter{
			StartDate: seeded[0].Date,
			EndDate:   seeded[1].Date,
		})

		// then
		require.NoError(t, err)
		require.Len(t, expenses, 2)
		require.Equal(t, seeded[1].ID, expenses[0].ID)
		require.Equal(t, seeded[0].ID, expenses[1].ID)
	})
}

func TestExpenseRepoImpl_GetByID(t *testing.T) {
	t.Run("should not return an expense owned by another user", func(t *testing.T) {
		// given
		ctx := context.Background()
		repo := NewExpenseRepo(db)
		owner := createFixtureUser(t)
		intruder := createFixtureUser(t)
		categoryId := createFixtureCategory(t)
		expense := fixtureExpense(owner, categoryId)
		_, err := repo.Store(ctx, expense)
		require.NoError(t, err)

		// when
		_, err = repo.GetByID(ctx, intruder, expense.ID)

		// then
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExpenseRepoImpl_Update(t *testing.T) {
	t.Run("should update the expense for its owner", func(t *testing.T) {
		// given
		ctx := context.Background()
		repo := NewExpenseRepo(db)
		userId := createFixtureUser(t)
		categoryId := createFixtureCategory(t)
		expense := fixtureExpense(userId, categoryId)
		_, err := repo.Store(ctx, expense)
		require.NoError(t, err)

		expense.Notes = "with oat milk"
		expense.Amount = decimal.NewFromFloat(5.20)

		// when
		updated, err := repo.Update(ctx, userId, expense)

		// then
		require.NoError(t, err)
		require.True(t, updated)
		stored, err := repo.GetByID(ctx, userId, expense.ID)
		require.NoError(t, err)
		require.Equal(t, "with oat milk", stored.Notes)
		require.True(t, stored.Amount.Equal(decimal.NewFromFloat(5.20)))
	})

	t.Run("should return ErrInvalidReference when changing to an unknown category", func(t *testing.T) {
		// given
		ctx := context.Background()
		repo := NewExpenseRepo(db)
		userId := createFixtureUser(t)
		categoryId := createFixtureCategory(t)
		expense := fixtureExpense(userId, categoryId)
		_, err := repo.Store(ctx, expense)
		require.NoError(t, err)

		expense.CategoryID = uuid.NewString()

		// when
		_, err = repo.Update(ctx, userId, expense)

		// then
		require.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("should report false when the caller is not the owner", func(t *testing.T) {
		// given
		ctx := context.Background()
		repo := NewExpenseRepo(db)
		owner := createFixtureUser(t)
		intruder := createFixtureUser(t)
		categoryId := createFixtureCategory(t)
		expense := fixtureExpense(owner, categoryId)
		_, err := repo.Store(ctx, expense)
		require.NoError(t, err)

		expense.Notes = "hijacked"

		// when
		updated, err := repo.Update(ctx, intruder, expense)

		// then
		require.NoError(t, err)
		require.False(t, updated)
	})
}

func TestExpenseRepoImpl_Delete(t *testing.T) {
	t.Run("should delete once and report false the second time", func(t *testing.T) {
		// given
		ctx := context.Background()
		repo := NewExpenseRepo(db)
		userId := createFixtureUser(t)
		categoryId := createFixtureCategory(t)
		expense := fixtureExpense(userId, categoryId)
		_, err := repo.Store(ctx, expense)
		require.NoError(t, err)

		// when
		first, err := repo.Delete(ctx, userId, expense.ID)
		require.NoError(t, err)
		second, err := repo.Delete(ctx, userId, expense.ID)
		require.NoError(t, err)

		// then
		require.True(t, first)
		require.False(t, second)
	})
}
