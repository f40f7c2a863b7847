package expense

import (
	"context"
	"fmt"

	"github.com/Lilia-Brown/expensy-api/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type ExpenseService interface {
	GetAll(ctx context.Context, filter Filter) ([]Expense, error)
	Get(ctx context.Context, id string) (Expense, error)
	Create(ctx context.Context, expense Expense) (Expense, error)
	Update(ctx context.Context, id string, patch Patch) (Expense, error)
	Delete(ctx context.Context, id string) error
}

type ExpenseServiceImpl struct {
	repo ExpenseRepo
}

func NewExpenseService(repo ExpenseRepo) *ExpenseServiceImpl {
	return &ExpenseServiceImpl{repo: repo}
}

func (s *ExpenseServiceImpl) GetAll(ctx context.Context, filter Filter) ([]Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId, filter)
}

func (s *ExpenseServiceImpl) Get(ctx context.Context, id string) (Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Expense{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetByID(ctx, userId, id)
}

func (s *ExpenseServiceImpl) Create(ctx context.Context, expense Expense) (Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Expense{}, fmt.Errorf("failed to get current user: %w", err)
	}
	expense.ID = uuid.NewString()
	expense.UserID = userId
	return s.repo.Store(ctx, expense)
}

// Update applies a partial merge: only fields present in the patch overwrite
// the stored expense. The existence check is scoped by id and owner.
func (s *ExpenseServiceImpl) Update(ctx context.Context, id string, patch Patch) (Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Expense{}, fmt.Errorf("failed to get current user: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, userId, id)
	if err != nil {
		return Expense{}, err
	}

	updated := patch.Apply(existing)
	ok, err := s.repo.Update(ctx, userId, updated)
	if err != nil {
		return Expense{}, err
	}
	if !ok {
		log.Warnf("expense not updated, probably because it does not exist (%s) or the user (%s) is not the owner", id, userId)
		return Expense{}, ErrNotFound
	}
	return updated, nil
}

func (s *ExpenseServiceImpl) Delete(ctx context.Context, id string) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	deleted, err := s.repo.Delete(ctx, userId, id)
	if err != nil {
		return err
	}
	if !deleted {
		log.Warnf("expense not deleted, probably because it does not exist (%s) or the user (%s) is not the owner", id, userId)
		return ErrNotFound
	}
	return nil
}
