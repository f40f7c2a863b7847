package category

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	GetAll(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, category Category) (Category, error)
}

type CategoryServiceImpl struct {
	repo Repo
}

func NewCategoryService(repo Repo) *CategoryServiceImpl {
	return &CategoryServiceImpl{repo: repo}
}

func (s *CategoryServiceImpl) GetAll(ctx context.Context) ([]Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *CategoryServiceImpl) Create(ctx context.Context, category Category) (Category, error) {
	category.ID = uuid.NewString()
	return s.repo.Store(ctx, category)
}
