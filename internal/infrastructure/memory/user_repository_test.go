package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/entity"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/repository"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()

	u := &entity.User{Email: "a@b.com", Password: "hash", Type: "users"}
	require.NoError(t, r.Create(ctx, u))
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := r.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, *u, *got)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &entity.User{Email: "a@b.com"}))
	err := r.Create(ctx, &entity.User{Email: "a@b.com"})

	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUserRepository_EmailIsExact(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()
	require.NoError(t, r.Create(ctx, &entity.User{Email: "a@b.com"}))

	_, err := r.GetByEmail(ctx, "A@B.com")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()
	require.NoError(t, r.Create(ctx, &entity.User{Email: "a@b.com", Password: "hash"}))

	got, err := r.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	got.Password = "changed"

	again, err := r.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", again.Password)
}
