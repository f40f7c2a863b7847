package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lilia-Brown/expensy-api/internal/database"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrNameExists = errors.New("category with this name already exists")

type Repo interface {
	Store(ctx context.Context, category Category) (Category, error)
	GetAll(ctx context.Context) ([]Category, error)
}

type CategoryRepoImpl struct {
	db *pgxpool.Pool
}

func NewCategoryRepo(db *pgxpool.Pool) *CategoryRepoImpl {
	return &CategoryRepoImpl{db: db}
}

func (c *CategoryRepoImpl) Store(ctx context.Context, category Category) (Category, error) {
	query := `INSERT INTO categories (id, name, description, icon, color, is_default)
				VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := c.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.Description,
		category.Icon,
		category.Color,
		category.IsDefault,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			log.Debugf("category name already taken: %s", category.Name)
			return Category{}, ErrNameExists
		}
		err := fmt.Errorf("could not create category: %w", err)
		log.Error(err)
		return Category{}, err
	}
	return category, nil
}

func (c *CategoryRepoImpl) GetAll(ctx context.Context) ([]Category, error) {
	query := `SELECT id, name, description, icon, color, is_default FROM categories ORDER BY name`
	rows, err := c.db.Query(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query categories: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var category Category
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.Icon,
			&category.Color,
			&category.IsDefault,
		); err != nil {
			err := fmt.Errorf("could not scan category: %w", err)
			log.Error(err)
			return nil, err
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return categories, nil
}
