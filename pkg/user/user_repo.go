package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lilia-Brown/expensy-api/internal/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("user with this email already exists")
)

type Repo interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}

type UserRepoImpl struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepoImpl {
	return &UserRepoImpl{db: db}
}

func (u *UserRepoImpl) Create(ctx context.Context, user User) (User, error) {
	query := `INSERT INTO users (id, email, password_hash, username, user_image_url, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := u.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Username,
		user.UserImageURL,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			log.Debugf("email already registered: %s", user.Email)
			return User{}, ErrEmailExists
		}
		err := fmt.Errorf("could not create user: %w", err)
		log.Error(err)
		return User{}, err
	}
	return user, nil
}

func (u *UserRepoImpl) GetByID(ctx context.Context, id string) (User, error) {
	query := `SELECT id, email, password_hash, username, user_image_url, created_at, updated_at
				FROM users WHERE id = $1`
	return u.scanOne(u.db.QueryRow(ctx, query, id))
}

func (u *UserRepoImpl) GetByEmail(ctx context.Context, email string) (User, error) {
	query := `SELECT id, email, password_hash, username, user_image_url, created_at, updated_at
				FROM users WHERE email = $1`
	return u.scanOne(u.db.QueryRow(ctx, query, email))
}

func (u *UserRepoImpl) scanOne(row pgx.Row) (User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Username,
		&user.UserImageURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	} else if err != nil {
		err := fmt.Errorf("could not scan user: %w", err)
		log.Error(err)
		return User{}, err
	}
	return user, nil
}
