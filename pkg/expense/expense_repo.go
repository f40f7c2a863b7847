package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Lilia-Brown/expensy-api/internal/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrNotFound covers both a missing row and a row owned by another user.
	ErrNotFound = errors.New("expense not found")
	// ErrInvalidReference signals an unmet foreign key (unknown owner or category).
	ErrInvalidReference = errors.New("referenced user or category does not exist")
)

type ExpenseRepo interface {
	Store(ctx context.Context, expense Expense) (Expense, error)
	GetAll(ctx context.Context, userId string, filter Filter) ([]Expense, error)
	GetByID(ctx context.Context, userId string, expenseId string) (Expense, error)
	Update(ctx context.Context, userId string, expense Expense) (bool, error)
	Delete(ctx context.Context, userId string, expenseId string) (bool, error)
}

type ExpenseRepoImpl struct {
	db *pgxpool.Pool
}

func NewExpenseRepo(db *pgxpool.Pool) *ExpenseRepoImpl {
	return &ExpenseRepoImpl{db: db}
}

const expenseColumns = `id, amount, currency, description, date, city, latitude, longitude, notes, source, user_id, category_id`

func (e *ExpenseRepoImpl) Store(ctx context.Context, expense Expense) (Expense, error) {
	query := `INSERT INTO expenses (` + expenseColumns + `)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := e.db.Exec(ctx, query,
		expense.ID,
		expense.Amount,
		expense.Currency,
		expense.Description,
		expense.Date,
		expense.City,
		expense.Latitude,
		expense.Longitude,
		expense.Notes,
		expense.Source,
		expense.UserID,
		expense.CategoryID,
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			log.Debugf("expense references missing user %s or category %s", expense.UserID, expense.CategoryID)
			return Expense{}, ErrInvalidReference
		}
		err := fmt.Errorf("could not create expense: %w", err)
		log.Error(err)
		return Expense{}, err
	}
	return expense, nil
}

// GetAll lists the caller's expenses, newest first, narrowed by the optional
// equality and date-range filters.
func (e *ExpenseRepoImpl) GetAll(ctx context.Context, userId string, filter Filter) ([]Expense, error) {
	conditions := []string{"user_id = $1"}
	args := []any{userId}

	if filter.City != "" {
		args = append(args, filter.City)
		conditions = append(conditions, fmt.Sprintf("city = $%d", len(args)))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if !filter.StartDate.IsZero() {
		args = append(args, filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if !filter.EndDate.IsZero() {
		args = append(args, filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM expenses WHERE %s ORDER BY date DESC`,
		expenseColumns, strings.Join(conditions, " AND "))
	rows, err := e.db.Query(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	expenses := make([]Expense, 0)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return expenses, nil
}

// GetByID fetches an expense by id and owner in a single lookup, so an
// expense owned by someone else is indistinguishable from a missing one.
func (e *ExpenseRepoImpl) GetByID(ctx context.Context, userId string, expenseId string) (Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1 AND user_id = $2`
	expense, err := scanExpense(e.db.QueryRow(ctx, query, expenseId, userId))
	if errors.Is(err, pgx.ErrNoRows) {
		return Expense{}, ErrNotFound
	} else if err != nil {
		return Expense{}, err
	}
	return expense, nil
}

func (e *ExpenseRepoImpl) Update(ctx context.Context, userId string, expense Expense) (bool, error) {
	query := `UPDATE expenses SET
					amount = $1,
					currency = $2,
					description = $3,
					date = $4,
					city = $5,
					latitude = $6,
					longitude = $7,
					notes = $8,
					source = $9,
					category_id = $10
				WHERE id = $11 AND user_id = $12`
	result, err := e.db.Exec(ctx, query,
		expense.Amount,
		expense.Currency,
		expense.Description,
		expense.Date,
		expense.City,
		expense.Latitude,
		expense.Longitude,
		expense.Notes,
		expense.Source,
		expense.CategoryID,
		expense.ID,
		userId,
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return false, ErrInvalidReference
		}
		err := fmt.Errorf("could not update expense: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (e *ExpenseRepoImpl) Delete(ctx context.Context, userId string, expenseId string) (bool, error) {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	result, err := e.db.Exec(ctx, query, expenseId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete expense: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func scanExpense(row pgx.Row) (Expense, error) {
	var expense Expense
	if err := row.Scan(
		&expense.ID,
		&expense.Amount,
		&expense.Currency,
		&expense.Description,
		&expense.Date,
		&expense.City,
		&expense.Latitude,
		&expense.Longitude,
		&expense.Notes,
		&expense.Source,
		&expense.UserID,
		&expense.CategoryID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Expense{}, err
		}
		err := fmt.Errorf("could not scan expense: %w", err)
		log.Error(err)
		return Expense{}, err
	}
	return expense, nil
}
