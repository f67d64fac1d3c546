// Package memory keeps users in process memory. Data does not survive a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-ddd-user-service/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-service/internal/domain/repository"
)

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]entity.User
	byEmail map[string]string
	now     func() time.Time
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]entity.User),
		byEmail: make(map[string]string),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Ping always succeeds.
func (r *UserRepository) Ping(context.Context) error { return nil }

func (r *UserRepository) Create(ctx context.Context, in entity.CreateUser) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, entity.ErrUserCreationFailed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[in.Email]; taken {
		return nil, entity.ErrUserAlreadyExists
	}
	ts := r.now()
	u := entity.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Age:       in.Age,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, entity.ErrUserLookupFailed
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, in entity.UpdateUser) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, entity.ErrUserUpdateFailed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[in.ID]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	next := in.Merge(current)
	if next.Email != current.Email {
		if owner, taken := r.byEmail[next.Email]; taken && owner != current.ID {
			return nil, entity.ErrUserUpdateFailed
		}
		delete(r.byEmail, current.Email)
		r.byEmail[next.Email] = next.ID
	}
	next.UpdatedAt = r.now()
	r.byID[next.ID] = next
	return &next, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return entity.ErrUserDeletionFailed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return entity.ErrUserNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
