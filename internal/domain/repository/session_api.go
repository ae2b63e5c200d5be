package repository

import (
	"context"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/entity"
)

// SessionAPI is the remote service that owns accounts and sessions.
// Both calls send {"email", "password"} and return the decoded "data" payload.
type SessionAPI interface {
	CreateUser(ctx context.Context, email, password string) (*entity.User, error)
	CreateSession(ctx context.Context, email, password string) (*entity.Session, error)
}
