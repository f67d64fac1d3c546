package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/oksasatya/go-ddd-user-service/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-service/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-service/pkg/helpers"
)

const selectUser = `SELECT id, name, email, age, created_at, updated_at FROM users WHERE id = ?`

type UserRepository struct {
	db     *sql.DB
	logger *logrus.Logger
	now    func() time.Time
}

func NewUserRepository(db *sql.DB, logger *logrus.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *UserRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *UserRepository) Close() error {
	return r.db.Close()
}

func (r *UserRepository) Create(ctx context.Context, in entity.CreateUser) (*entity.User, error) {
	ts := r.now().Truncate(time.Millisecond)
	u := &entity.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Age:       in.Age,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, age, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, int64(u.Age), ts.UnixMilli(), ts.UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entity.ErrUserAlreadyExists
		}
		helpers.LogError(r.logger, "failed to create user", err, logrus.Fields{"user_id": u.ID})
		return nil, entity.ErrUserCreationFailed
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUser, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		helpers.LogError(r.logger, "failed to get user", err, logrus.Fields{"user_id": id})
		return nil, entity.ErrUserLookupFailed
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, in entity.UpdateUser) (*entity.User, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE users
		SET name = COALESCE(?, name),
		    email = COALESCE(?, email),
		    age = COALESCE(?, age),
		    updated_at = ?
		WHERE id = ?
		RETURNING id, name, email, age, created_at, updated_at`,
		nullable(in.Name), nullable(in.Email), nullableAge(in.Age), r.now().UnixMilli(), in.ID,
	)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		helpers.LogError(r.logger, "failed to update user", err, logrus.Fields{"user_id": in.ID})
		return nil, entity.ErrUserUpdateFailed
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		helpers.LogError(r.logger, "failed to delete user", err, logrus.Fields{"user_id": id})
		return entity.ErrUserDeletionFailed
	}
	n, err := res.RowsAffected()
	if err != nil {
		helpers.LogError(r.logger, "failed to read deleted rows", err, logrus.Fields{"user_id": id})
		return entity.ErrUserDeletionFailed
	}
	if n == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (*entity.User, error) {
	var (
		u                entity.User
		age              int64
		created, updated int64
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &age, &created, &updated); err != nil {
		return nil, err
	}
	u.Age = entity.AgeFromStorage(age)
	u.CreatedAt = time.UnixMilli(created).UTC()
	u.UpdatedAt = time.UnixMilli(updated).UTC()
	return &u, nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableAge(a *uint8) any {
	if a == nil {
		return nil
	}
	return int64(*a)
}

func isUniqueViolation(err error) bool {
	var sqlErr *sqlitedrv.Error
	if errors.As(err, &sqlErr) {
		code := sqlErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

var _ repository.UserRepository = (*UserRepository)(nil)
