package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-user-service/internal/domain/entity"
)

// UserRepository defines the interface for user persistence.
//
// Implementations must return only the entity.ErrUser* sentinels:
//   - Create:  ErrUserAlreadyExists, ErrUserCreationFailed
//   - GetByID: ErrUserNotFound, ErrUserLookupFailed
//   - Update:  ErrUserNotFound, ErrUserUpdateFailed
//   - Delete:  ErrUserNotFound, ErrUserDeletionFailed
type UserRepository interface {
	Create(ctx context.Context, in entity.CreateUser) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, in entity.UpdateUser) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}
