package user

import (
	"context"

	"github.com/Lilia-Brown/expensy-api/internal/utils"
	"github.com/google/uuid"
)

// PasswordHasher abstracts the one-way password hash used on registration.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Service interface {
	Register(ctx context.Context, registration Registration) (User, error)
	GetUser(ctx context.Context, id string) (User, error)
}

// Registration carries the input of a sign-up request. Username and
// UserImageURL are optional.
type Registration struct {
	Email        string
	Password     string
	Username     string
	UserImageURL string
}

type UserServiceImpl struct {
	repo   Repo
	hasher PasswordHasher
	clock  utils.Clock
}

func NewUserService(repo Repo, hasher PasswordHasher) *UserServiceImpl {
	return &UserServiceImpl{repo: repo, hasher: hasher, clock: &utils.SystemClock{}}
}

func (u *UserServiceImpl) Register(ctx context.Context, registration Registration) (User, error) {
	hash, err := u.hasher.Hash(registration.Password)
	if err != nil {
		return User{}, err
	}

	now := u.clock.Now().UTC()
	user := User{
		ID:           uuid.NewString(),
		Email:        registration.Email,
		PasswordHash: hash,
		Username:     registration.Username,
		UserImageURL: registration.UserImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, user)
}

func (u *UserServiceImpl) GetUser(ctx context.Context, id string) (User, error) {
	return u.repo.GetByID(ctx, id)
}
