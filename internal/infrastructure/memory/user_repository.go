package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/entity"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/repository"
)

// UserRepository keeps users in process memory, keyed by exact email.
type UserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byEmail: make(map[string]entity.User)}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	now := time.Now()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.byEmail[u.Email] = *u
	return nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
