package budget

import (
	"context"
	"fmt"

	"github.com/Lilia-Brown/expensy-api/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type BudgetService interface {
	GetAll(ctx context.Context) ([]Budget, error)
	Get(ctx context.Context, id string) (Budget, error)
	GetByCity(ctx context.Context, city string) (Budget, error)
	Create(ctx context.Context, budget Budget) (Budget, error)
	Update(ctx context.Context, id string, patch Patch) (Budget, error)
	Delete(ctx context.Context, id string) error
}

type BudgetServiceImpl struct {
	repo BudgetRepo
}

func NewBudgetService(repo BudgetRepo) *BudgetServiceImpl {
	return &BudgetServiceImpl{repo: repo}
}

func (s *BudgetServiceImpl) GetAll(ctx context.Context) ([]Budget, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *BudgetServiceImpl) Get(ctx context.Context, id string) (Budget, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Budget{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetByID(ctx, userId, id)
}

func (s *BudgetServiceImpl) GetByCity(ctx context.Context, city string) (Budget, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Budget{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetByCity(ctx, userId, city)
}

func (s *BudgetServiceImpl) Create(ctx context.Context, budget Budget) (Budget, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Budget{}, fmt.Errorf("failed to get current user: %w", err)
	}
	budget.ID = uuid.NewString()
	budget.UserID = userId
	return s.repo.Store(ctx, budget)
}

// Update applies a partial merge: only fields present in the patch overwrite
// the stored budget. The existence check is scoped by id and owner.
func (s *BudgetServiceImpl) Update(ctx context.Context, id string, patch Patch) (Budget, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Budget{}, fmt.Errorf("failed to get current user: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, userId, id)
	if err != nil {
		return Budget{}, err
	}

	updated := patch.Apply(existing)
	ok, err := s.repo.Update(ctx, userId, updated)
	if err != nil {
		return Budget{}, err
	}
	if !ok {
		log.Warnf("budget not updated, probably because it does not exist (%s) or the user (%s) is not the owner", id, userId)
		return Budget{}, ErrNotFound
	}
	return updated, nil
}

func (s *BudgetServiceImpl) Delete(ctx context.Context, id string) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	deleted, err := s.repo.Delete(ctx, userId, id)
	if err != nil {
		return err
	}
	if !deleted {
		log.Warnf("budget not deleted, probably because it does not exist (%s) or the user (%s) is not the owner", id, userId)
		return ErrNotFound
	}
	return nil
}
