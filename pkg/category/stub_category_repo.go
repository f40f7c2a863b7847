package category

import (
	"context"
	"sort"
)

// StubCategoryRepo is an in-memory Repo implementation for tests.
type StubCategoryRepo struct {
	categories map[string]Category
}

func NewStubCategoryRepo() *StubCategoryRepo {
	return &StubCategoryRepo{categories: make(map[string]Category)}
}

func (s *StubCategoryRepo) Store(_ context.Context, category Category) (Category, error) {
	for _, existing := range s.categories {
		if existing.Name == category.Name {
			return Category{}, ErrNameExists
		}
	}
	s.categories[category.ID] = category
	return category, nil
}

func (s *StubCategoryRepo) GetAll(_ context.Context) ([]Category, error) {
	all := make([]Category, 0, len(s.categories))
	for _, category := range s.categories {
		all = append(all, category)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (s *StubCategoryRepo) Cleanup() {
	s.categories = make(map[string]Category)
}
