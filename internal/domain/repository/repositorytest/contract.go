// Package repositorytest holds the behavioural contract every
// repository.UserRepository implementation must satisfy. Adapter packages run
// it from their own tests so callers never need to know which store they talk to.
package repositorytest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-user-service/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-service/internal/domain/repository"
)

// Factory returns a repository ready for use. It may be called once per subtest.
type Factory func(t *testing.T) repository.UserRepository

func uniqueEmail(prefix string) string {
	return prefix + "-" + uuid.NewString() + "@example.com"
}

func ptr[T any](v T) *T { return &v }

// Run executes the contract against repositories built by newRepo.
func Run(t *testing.T, newRepo Factory) {
	t.Helper()
	ctx := context.Background()

	t.Run("create then get returns same fields", func(t *testing.T) {
		repo := newRepo(t)
		in := entity.CreateUser{Name: "Ann", Email: uniqueEmail("ann"), Age: 30}

		created, err := repo.Create(ctx, in)
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		require.Equal(t, in.Name, created.Name)
		require.Equal(t, in.Email, created.Email)
		require.Equal(t, in.Age, created.Age)

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created.ID, got.ID)
		require.Equal(t, in.Name, got.Name)
		require.Equal(t, in.Email, got.Email)
		require.Equal(t, in.Age, got.Age)
	})

	t.Run("create assigns distinct ids", func(t *testing.T) {
		repo := newRepo(t)
		a, err := repo.Create(ctx, entity.CreateUser{Name: "A", Email: uniqueEmail("a"), Age: 1})
		require.NoError(t, err)
		b, err := repo.Create(ctx, entity.CreateUser{Name: "B", Email: uniqueEmail("b"), Age: 2})
		require.NoError(t, err)
		require.NotEqual(t, a.ID, b.ID)
	})

	t.Run("boundary ages round trip", func(t *testing.T) {
		repo := newRepo(t)
		for _, age := range []uint8{0, 255} {
			u, err := repo.Create(ctx, entity.CreateUser{Name: "Edge", Email: uniqueEmail("edge"), Age: age})
			require.NoError(t, err)
			got, err := repo.GetByID(ctx, u.ID)
			require.NoError(t, err)
			require.Equal(t, age, got.Age)
		}
	})

	t.Run("duplicate email is rejected and first user kept", func(t *testing.T) {
		repo := newRepo(t)
		email := uniqueEmail("dup")
		first, err := repo.Create(ctx, entity.CreateUser{Name: "First", Email: email, Age: 20})
		require.NoError(t, err)

		_, err = repo.Create(ctx, entity.CreateUser{Name: "Second", Email: email, Age: 40})
		require.ErrorIs(t, err, entity.ErrUserAlreadyExists)

		got, err := repo.GetByID(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, "First", got.Name)
		require.Equal(t, uint8(20), got.Age)
	})

	t.Run("get unknown id is not found", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.GetByID(ctx, uuid.NewString())
		require.ErrorIs(t, err, entity.ErrUserNotFound)
	})

	t.Run("update without fields keeps values", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Create(ctx, entity.CreateUser{Name: "Ann", Email: uniqueEmail("ann"), Age: 30})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, entity.UpdateUser{ID: created.ID})
		require.NoError(t, err)
		require.Equal(t, created.ID, updated.ID)
		require.Equal(t, created.Name, updated.Name)
		require.Equal(t, created.Email, updated.Email)
		require.Equal(t, created.Age, updated.Age)
		require.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("update single field changes only that field", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Create(ctx, entity.CreateUser{Name: "Ann", Email: uniqueEmail("ann"), Age: 30})
		require.NoError(t, err)

		upd := entity.UpdateUser{ID: created.ID, Age: ptr(uint8(31))}
		first, err := repo.Update(ctx, upd)
		require.NoError(t, err)
		require.Equal(t, uint8(31), first.Age)
		require.Equal(t, created.Name, first.Name)
		require.Equal(t, created.Email, first.Email)

		second, err := repo.Update(ctx, upd)
		require.NoError(t, err)
		require.Equal(t, first.Name, second.Name)
		require.Equal(t, first.Email, second.Email)
		require.Equal(t, first.Age, second.Age)

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, uint8(31), got.Age)
		require.Equal(t, created.Name, got.Name)
	})

	t.Run("update accepts empty values", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Create(ctx, entity.CreateUser{Name: "Ann", Email: uniqueEmail("ann"), Age: 30})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, entity.UpdateUser{ID: created.ID, Name: ptr(""), Age: ptr(uint8(0))})
		require.NoError(t, err)
		require.Empty(t, updated.Name)
		require.Zero(t, updated.Age)
		require.Equal(t, created.Email, updated.Email)
	})

	t.Run("update unknown id is not found", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Update(ctx, entity.UpdateUser{ID: uuid.NewString(), Name: ptr("x")})
		require.ErrorIs(t, err, entity.ErrUserNotFound)
	})

	t.Run("update to taken email fails", func(t *testing.T) {
		repo := newRepo(t)
		a, err := repo.Create(ctx, entity.CreateUser{Name: "A", Email: uniqueEmail("a"), Age: 1})
		require.NoError(t, err)
		b, err := repo.Create(ctx, entity.CreateUser{Name: "B", Email: uniqueEmail("b"), Age: 2})
		require.NoError(t, err)

		_, err = repo.Update(ctx, entity.UpdateUser{ID: b.ID, Email: ptr(a.Email)})
		require.ErrorIs(t, err, entity.ErrUserUpdateFailed)

		got, err := repo.GetByID(ctx, b.ID)
		require.NoError(t, err)
		require.Equal(t, b.Email, got.Email)
	})

	t.Run("delete then get is not found", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Create(ctx, entity.CreateUser{Name: "Ann", Email: uniqueEmail("ann"), Age: 30})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, created.ID))

		_, err = repo.GetByID(ctx, created.ID)
		require.ErrorIs(t, err, entity.ErrUserNotFound)

		// a second delete has nothing left to remove
		require.ErrorIs(t, repo.Delete(ctx, created.ID), entity.ErrUserNotFound)
	})

	t.Run("delete unknown id is not found", func(t *testing.T) {
		repo := newRepo(t)
		require.ErrorIs(t, repo.Delete(ctx, uuid.NewString()), entity.ErrUserNotFound)
	})

	t.Run("email is free again after delete", func(t *testing.T) {
		repo := newRepo(t)
		email := uniqueEmail("reuse")
		first, err := repo.Create(ctx, entity.CreateUser{Name: "A", Email: email, Age: 1})
		require.NoError(t, err)
		require.NoError(t, repo.Delete(ctx, first.ID))

		second, err := repo.Create(ctx, entity.CreateUser{Name: "B", Email: email, Age: 2})
		require.NoError(t, err)
		require.NotEqual(t, first.ID, second.ID)
	})
}
