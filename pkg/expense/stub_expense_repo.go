package expense

import (
	"context"
	"sort"
)

// StubExpenseRepo is an in-memory ExpenseRepo implementation for tests. It
// enforces the same ownership scoping and filtering as the database-backed repo.
type StubExpenseRepo struct {
	expenses map[string]Expense
	// knownCategories mimics the category foreign key; empty means any
	// category id is accepted.
	knownCategories map[string]bool
}

func NewStubExpenseRepo() *StubExpenseRepo {
	return &StubExpenseRepo{
		expenses:        make(map[string]Expense),
		knownCategories: make(map[string]bool),
	}
}

// WithCategory registers a category id the stub will accept on Store.
func (s *StubExpenseRepo) WithCategory(id string) *StubExpenseRepo {
	s.knownCategories[id] = true
	return s
}

func (s *StubExpenseRepo) Store(_ context.Context, expense Expense) (Expense, error) {
	if len(s.knownCategories) > 0 && !s.knownCategories[expense.CategoryID] {
		return Expense{}, ErrInvalidReference
	}
	s.expenses[expense.ID] = expense
	return expense, nil
}

func (s *StubExpenseRepo) GetAll(_ context.Context, userId string, filter Filter) ([]Expense, error) {
	matched := make([]Expense, 0)
	for _, expense := range s.expenses {
		if expense.UserID != userId {
			continue
		}
		if filter.City != "" && expense.City != filter.City {
			continue
		}
		if filter.CategoryID != "" && expense.CategoryID != filter.CategoryID {
			continue
		}
		if !filter.StartDate.IsZero() && expense.Date.Before(filter.StartDate) {
			continue
		}
		if !filter.EndDate.IsZero() && expense.Date.After(filter.EndDate) {
			continue
		}
		matched = append(matched, expense)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date.After(matched[j].Date) })
	return matched, nil
}

func (s *StubExpenseRepo) GetByID(_ context.Context, userId string, expenseId string) (Expense, error) {
	expense, ok := s.expenses[expenseId]
	if !ok || expense.UserID != userId {
		return Expense{}, ErrNotFound
	}
	return expense, nil
}

func (s *StubExpenseRepo) Update(_ context.Context, userId string, expense Expense) (bool, error) {
	existing, ok := s.expenses[expense.ID]
	if !ok || existing.UserID != userId {
		return false, nil
	}
	if len(s.knownCategories) > 0 && !s.knownCategories[expense.CategoryID] {
		return false, ErrInvalidReference
	}
	expense.UserID = existing.UserID
	s.expenses[expense.ID] = expense
	return true, nil
}

func (s *StubExpenseRepo) Delete(_ context.Context, userId string, expenseId string) (bool, error) {
	existing, ok := s.expenses[expenseId]
	if !ok || existing.UserID != userId {
		return false, nil
	}
	delete(s.expenses, expenseId)
	return true, nil
}

func (s *StubExpenseRepo) Cleanup() {
	s.expenses = make(map[string]Expense)
	s.knownCategories = make(map[string]bool)
}
