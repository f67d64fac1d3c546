package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-service/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-service/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-service/pkg/helpers"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// DBTX is the subset of *pgxpool.Pool the repository needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type UserRepository struct {
	db     DBTX
	logger *logrus.Logger
}

func NewUserRepository(db DBTX, logger *logrus.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

// Ping reports whether the database is reachable.
func (r *UserRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *UserRepository) Create(ctx context.Context, in entity.CreateUser) (*entity.User, error) {
	u := &entity.User{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Email: in.Email,
		Age:   in.Age,
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO users (id, name, email, age)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, u.ID, u.Name, u.Email, int16(u.Age))

	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, entity.ErrUserAlreadyExists
		}
		helpers.LogError(r.logger, "failed to create user", err, logrus.Fields{"user_id": u.ID})
		return nil, entity.ErrUserCreationFailed
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, email, age, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		helpers.LogError(r.logger, "failed to get user", err, logrus.Fields{"user_id": id})
		return nil, entity.ErrUserLookupFailed
	}
	return u, nil
}

// Update merges the present fields server side in one statement, so a
// concurrent writer cannot slip in between a read and the write.
func (r *UserRepository) Update(ctx context.Context, in entity.UpdateUser) (*entity.User, error) {
	var age *int16
	if in.Age != nil {
		v := int16(*in.Age)
		age = &v
	}

	row := r.db.QueryRow(ctx, `
		UPDATE users
		SET name = COALESCE($2, name),
		    email = COALESCE($3, email),
		    age = COALESCE($4, age),
		    updated_at = now()
		WHERE id = $1
		RETURNING id, name, email, age, created_at, updated_at
	`, in.ID, in.Name, in.Email, age)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		helpers.LogError(r.logger, "failed to update user", err, logrus.Fields{"user_id": in.ID})
		return nil, entity.ErrUserUpdateFailed
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		helpers.LogError(r.logger, "failed to delete user", err, logrus.Fields{"user_id": id})
		return entity.ErrUserDeletionFailed
	}
	if res.RowsAffected() == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var age int16
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &age, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Age = entity.AgeFromStorage(int64(age))
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

var _ repository.UserRepository = (*UserRepository)(nil)
