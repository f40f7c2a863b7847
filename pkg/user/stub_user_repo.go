package user

import (
	"context"
)

// StubUserRepo is an in-memory Repo implementation for tests.
type StubUserRepo struct {
	users map[string]User
}

func NewStubUserRepo() *StubUserRepo {
	return &StubUserRepo{users: make(map[string]User)}
}

func (s *StubUserRepo) Create(_ context.Context, user User) (User, error) {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return User{}, ErrEmailExists
		}
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *StubUserRepo) GetByID(_ context.Context, id string) (User, error) {
	user, ok := s.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (s *StubUserRepo) GetByEmail(_ context.Context, email string) (User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

func (s *StubUserRepo) Cleanup() {
	s.users = make(map[string]User)
}
