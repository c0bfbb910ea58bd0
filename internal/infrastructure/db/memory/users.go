// Package memory implements the transient backend: process-local tables
// that stand in for MongoDB when it is unreachable. Nothing here survives a
// restart; the tables exist so the service keeps answering while degraded.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pradeep1865/websiteFromStitchDesign/internal/core/domain"
)

// UserRepository is an in-process user table keyed by email. All access
// goes through the mutex; records are copied on the way in and out so
// callers never share memory with the table.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepository) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrDuplicateEmail
	}

	created := *user
	created.ID = uuid.NewString()
	r.users[created.Email] = created
	return &created, nil
}
