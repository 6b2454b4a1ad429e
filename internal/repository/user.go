package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/evolverse/api/internal/model"
)

// ErrUsernameTaken is returned by UserRepository.Create when the username
// already belongs to another account.
var ErrUsernameTaken = errors.New("username already exists")

// UserRepository stores registered accounts. Unlike the content tables it
// starts empty and enforces username uniqueness on insert.
type UserRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.User
	order []string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{rows: make(map[string]model.User)}
}

// Create inserts the user under a fresh UUID, rejecting duplicate
// usernames. The uniqueness check and insert happen under one write lock.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if r.rows[id].Username == user.Username {
			return ErrUsernameTaken
		}
	}

	user.ID = uuid.NewString()
	r.rows[user.ID] = *user
	r.order = append(r.order, user.ID)
	return nil
}

// GetByUsername returns the account with the given username, or nil when
// no such account exists.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.rows[id].Username == username {
			user := r.rows[id]
			return &user, nil
		}
	}
	return nil, nil
}

// GetByID returns the account with the given ID, or nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}
