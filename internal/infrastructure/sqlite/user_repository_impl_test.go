package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-user-service/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-service/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-service/internal/domain/repository/repositorytest"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUserRepositoryContract(t *testing.T) {
	repositorytest.Run(t, func(t *testing.T) repository.UserRepository {
		logger, _ := test.NewNullLogger()
		return NewUserRepository(openMemory(t), logger)
	})
}

func TestOpenIsIdempotent(t *testing.T) {
	db := openMemory(t)
	_, err := db.ExecContext(context.Background(), bootstrapSchema)
	require.NoError(t, err)
}

func TestPing(t *testing.T) {
	repo := NewUserRepository(openMemory(t), nil)
	require.NoError(t, repo.Ping(context.Background()))
}

func newMockRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock, *test.Hook) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger, hook := test.NewNullLogger()
	return NewUserRepository(db, logger), mock, hook
}

func TestDriverFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk I/O error")

	t.Run("create", func(t *testing.T) {
		repo, mock, hook := newMockRepo(t)
		mock.ExpectExec(`INSERT INTO users`).WillReturnError(boom)

		_, err := repo.Create(ctx, entity.CreateUser{Name: "Ann", Email: "ann@x.com", Age: 30})
		require.ErrorIs(t, err, entity.ErrUserCreationFailed)
		require.Equal(t, "disk I/O error", hook.LastEntry().Data["error"])
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get", func(t *testing.T) {
		repo, mock, hook := newMockRepo(t)
		mock.ExpectQuery(`SELECT id, name, email, age, created_at, updated_at FROM users WHERE id = \?`).
			WithArgs("u-1").
			WillReturnError(boom)

		_, err := repo.GetByID(ctx, "u-1")
		require.ErrorIs(t, err, entity.ErrUserLookupFailed)
		require.NotErrorIs(t, err, entity.ErrUserNotFound)
		require.Len(t, hook.AllEntries(), 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update", func(t *testing.T) {
		repo, mock, hook := newMockRepo(t)
		mock.ExpectQuery(`UPDATE users`).WillReturnError(boom)

		_, err := repo.Update(ctx, entity.UpdateUser{ID: "u-1"})
		require.ErrorIs(t, err, entity.ErrUserUpdateFailed)
		require.Len(t, hook.AllEntries(), 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete", func(t *testing.T) {
		repo, mock, hook := newMockRepo(t)
		mock.ExpectExec(`DELETE FROM users WHERE id = \?`).WithArgs("u-1").WillReturnError(boom)

		err := repo.Delete(ctx, "u-1")
		require.ErrorIs(t, err, entity.ErrUserDeletionFailed)
		require.Len(t, hook.AllEntries(), 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateSendsNullForAbsentFields(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	mock.ExpectQuery(`UPDATE users`).
		WithArgs(nil, "new@x.com", nil, sqlmock.AnyArg(), "u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "age", "created_at", "updated_at"}).
			AddRow("u-1", "Ann", "new@x.com", int64(30), int64(1700000000000), int64(1700000000500)))

	email := "new@x.com"
	u, err := repo.Update(context.Background(), entity.UpdateUser{ID: "u-1", Email: &email})
	require.NoError(t, err)
	require.Equal(t, "new@x.com", u.Email)
	require.Equal(t, int64(1700000000500), u.UpdatedAt.UnixMilli())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolationFallback(t *testing.T) {
	require.True(t, isUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)")))
	require.False(t, isUniqueViolation(errors.New("database is locked")))
}
