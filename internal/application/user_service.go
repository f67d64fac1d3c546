package application

import (
	"context"

	"github.com/oksasatya/go-ddd-user-service/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-user-service/internal/domain/repository"
)

// Service exposes the user use cases to the transport layer. It forwards to
// the repository and returns its results and errors unchanged.
type Service struct {
	Repo repo.UserRepository
}

func NewService(repo repo.UserRepository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) CreateUser(ctx context.Context, in entity.CreateUser) (*entity.User, error) {
	return s.Repo.Create(ctx, in)
}

func (s *Service) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) UpdateUser(ctx context.Context, in entity.UpdateUser) (*entity.User, error) {
	return s.Repo.Update(ctx, in)
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
