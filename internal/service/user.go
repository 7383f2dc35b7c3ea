package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rishiboppana/stayhub/internal/domain"
	"github.com/rishiboppana/stayhub/internal/service/ports"
)

type UserService struct {
	repo     ports.UserRepo
	validate *validator.Validate
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{
		repo:     repo,
		validate: validator.New(),
	}
}

// Create registers an owner or a traveler. Emails are stored lower-cased.
func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	role, err := domain.ParseRole(string(input.Role))
	if err != nil {
		return nil, err
	}
	input.Role = role

	if err = s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	user := &domain.User{
		Name:  input.Name,
		Email: input.Email,
		Role:  input.Role,
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
