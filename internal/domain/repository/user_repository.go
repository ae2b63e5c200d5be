package repository

import (
	"context"
	"errors"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/entity"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the storage operations the reference session API needs.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
