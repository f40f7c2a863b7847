package budget

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Lilia-Brown/expensy-api/internal/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrNotFound covers both a missing row and a row owned by another user.
	// The two cases are indistinguishable to callers.
	ErrNotFound = errors.New("budget not found")
	// ErrCityExists signals the (user, city) uniqueness constraint.
	ErrCityExists = errors.New("budget for this city already exists")
	// ErrInvalidReference signals an unmet foreign key (unknown owner).
	ErrInvalidReference = errors.New("referenced user does not exist")
)

type BudgetRepo interface {
	Store(ctx context.Context, budget Budget) (Budget, error)
	GetAll(ctx context.Context, userId string) ([]Budget, error)
	GetByID(ctx context.Context, userId string, budgetId string) (Budget, error)
	GetByCity(ctx context.Context, userId string, city string) (Budget, error)
	Update(ctx context.Context, userId string, budget Budget) (bool, error)
	Delete(ctx context.Context, userId string, budgetId string) (bool, error)
}

type BudgetRepoImpl struct {
	db *pgxpool.Pool
}

func NewBudgetRepo(db *pgxpool.Pool) *BudgetRepoImpl {
	return &BudgetRepoImpl{db: db}
}

func (b *BudgetRepoImpl) Store(ctx context.Context, budget Budget) (Budget, error) {
	query := `INSERT INTO budgets (id, city, budget_amount, currency, start_date, end_date, user_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := b.db.Exec(ctx, query,
		budget.ID,
		budget.City,
		budget.BudgetAmount,
		budget.Currency,
		budget.StartDate.Format("2006-01-02"),
		endDateParam(budget.EndDate),
		budget.UserID,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			log.Debugf("budget already exists for user %s and city %s", budget.UserID, budget.City)
			return Budget{}, ErrCityExists
		}
		if database.IsForeignKeyViolation(err) {
			return Budget{}, ErrInvalidReference
		}
		err := fmt.Errorf("could not create budget: %w", err)
		log.Error(err)
		return Budget{}, err
	}
	return budget, nil
}

func (b *BudgetRepoImpl) GetAll(ctx context.Context, userId string) ([]Budget, error) {
	query := `SELECT id, city, budget_amount, currency, start_date, end_date, user_id
				FROM budgets WHERE user_id = $1 ORDER BY start_date DESC`
	rows, err := b.db.Query(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query budgets: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	budgets := make([]Budget, 0)
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return budgets, nil
}

// GetByID fetches a budget by id and owner in a single lookup, so a budget
// owned by someone else is indistinguishable from a missing one.
func (b *BudgetRepoImpl) GetByID(ctx context.Context, userId string, budgetId string) (Budget, error) {
	query := `SELECT id, city, budget_amount, currency, start_date, end_date, user_id
				FROM budgets WHERE id = $1 AND user_id = $2`
	budget, err := scanBudget(b.db.QueryRow(ctx, query, budgetId, userId))
	if errors.Is(err, pgx.ErrNoRows) {
		return Budget{}, ErrNotFound
	} else if err != nil {
		return Budget{}, err
	}
	return budget, nil
}

func (b *BudgetRepoImpl) GetByCity(ctx context.Context, userId string, city string) (Budget, error) {
	query := `SELECT id, city, budget_amount, currency, start_date, end_date, user_id
				FROM budgets WHERE user_id = $1 AND city = $2`
	budget, err := scanBudget(b.db.QueryRow(ctx, query, userId, city))
	if errors.Is(err, pgx.ErrNoRows) {
		return Budget{}, ErrNotFound
	} else if err != nil {
		return Budget{}, err
	}
	return budget, nil
}

func (b *BudgetRepoImpl) Update(ctx context.Context, userId string, budget Budget) (bool, error) {
	query := `UPDATE budgets SET
					city = $1,
					budget_amount = $2,
					currency = $3,
					start_date = $4,
					end_date = $5
				WHERE id = $6 AND user_id = $7`
	result, err := b.db.Exec(ctx, query,
		budget.City,
		budget.BudgetAmount,
		budget.Currency,
		budget.StartDate.Format("2006-01-02"),
		endDateParam(budget.EndDate),
		budget.ID,
		userId,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return false, ErrCityExists
		}
		err := fmt.Errorf("could not update budget: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (b *BudgetRepoImpl) Delete(ctx context.Context, userId string, budgetId string) (bool, error) {
	query := `DELETE FROM budgets WHERE id = $1 AND user_id = $2`
	result, err := b.db.Exec(ctx, query, budgetId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete budget: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func scanBudget(row pgx.Row) (Budget, error) {
	var budget Budget
	var endDate sql.NullTime
	if err := row.Scan(
		&budget.ID,
		&budget.City,
		&budget.BudgetAmount,
		&budget.Currency,
		&budget.StartDate,
		&endDate,
		&budget.UserID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Budget{}, err
		}
		err := fmt.Errorf("could not scan budget: %w", err)
		log.Error(err)
		return Budget{}, err
	}
	if endDate.Valid {
		budget.EndDate = endDate.Time
	}
	return budget, nil
}

func endDateParam(endDate time.Time) interface{} {
	if endDate.IsZero() {
		return nil
	}
	return endDate.Format("2006-01-02")
}
