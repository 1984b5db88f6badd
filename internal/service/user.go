package service

import (
	"context"
	"fmt"

	"github.com/lotecerto/lotecerto-api/internal/domain"
	"github.com/lotecerto/lotecerto-api/internal/repository"
)

var ErrUserNotFound = repository.ErrUserNotFound

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	UpdateTheme(ctx context.Context, id uint, theme string) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) UpdateTheme(ctx context.Context, id uint, theme string) (domain.User, error) {
	if err := s.repo.UpdateTheme(ctx, id, theme); err != nil {
		return domain.User{}, fmt.Errorf("s.repo.UpdateTheme -> %w", err)
	}

	return s.GetUser(ctx, id)
}
