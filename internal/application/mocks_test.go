package application

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/entity"
)

type MockSessionAPI struct {
	mock.Mock
}

func (m *MockSessionAPI) CreateUser(ctx context.Context, email, password string) (*entity.User, error) {
	args := m.Called(ctx, email, password)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionAPI) CreateSession(ctx context.Context, email, password string) (*entity.Session, error) {
	args := m.Called(ctx, email, password)
	if s := args.Get(0); s != nil {
		return s.(*entity.Session), args.Error(1)
	}
	return nil, args.Error(1)
}
