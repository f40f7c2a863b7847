package budget

import (
	"context"
	"sort"
)

// StubBudgetRepo is an in-memory BudgetRepo implementation for tests. It
// enforces the same ownership scoping and (user, city) uniqueness as the
// database-backed repo.
type StubBudgetRepo struct {
	budgets map[string]Budget
}

func NewStubBudgetRepo() *StubBudgetRepo {
	return &StubBudgetRepo{budgets: make(map[string]Budget)}
}

func (s *StubBudgetRepo) Store(_ context.Context, budget Budget) (Budget, error) {
	for _, existing := range s.budgets {
		if existing.UserID == budget.UserID && existing.City == budget.City {
			return Budget{}, ErrCityExists
		}
	}
	s.budgets[budget.ID] = budget
	return budget, nil
}

func (s *StubBudgetRepo) GetAll(_ context.Context, userId string) ([]Budget, error) {
	owned := make([]Budget, 0)
	for _, budget := range s.budgets {
		if budget.UserID == userId {
			owned = append(owned, budget)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].StartDate.After(owned[j].StartDate) })
	return owned, nil
}

func (s *StubBudgetRepo) GetByID(_ context.Context, userId string, budgetId string) (Budget, error) {
	budget, ok := s.budgets[budgetId]
	if !ok || budget.UserID != userId {
		return Budget{}, ErrNotFound
	}
	return budget, nil
}

func (s *StubBudgetRepo) GetByCity(_ context.Context, userId string, city string) (Budget, error) {
	for _, budget := range s.budgets {
		if budget.UserID == userId && budget.City == city {
			return budget, nil
		}
	}
	return Budget{}, ErrNotFound
}

func (s *StubBudgetRepo) Update(_ context.Context, userId string, budget Budget) (bool, error) {
	existing, ok := s.budgets[budget.ID]
	if !ok || existing.UserID != userId {
		return false, nil
	}
	budget.UserID = existing.UserID
	s.budgets[budget.ID] = budget
	return true, nil
}

func (s *StubBudgetRepo) Delete(_ context.Context, userId string, budgetId string) (bool, error) {
	existing, ok := s.budgets[budgetId]
	if !ok || existing.UserID != userId {
		return false, nil
	}
	delete(s.budgets, budgetId)
	return true, nil
}

func (s *StubBudgetRepo) Cleanup() {
	s.budgets = make(map[string]Budget)
}
