package services

import (
	"context"
	"fmt"
	"strings"

	"blogly/internal/models"
	"blogly/internal/repositories"
)

type UserService interface {
	Create(ctx context.Context, firstName, lastName, imageURL string) (*models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id uint, firstName, lastName, imageURL string) (*models.User, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, firstName, lastName, imageURL string) (*models.User, error) {
	u, err := buildUser(firstName, lastName, imageURL)
	if err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("service: create user: %w", err)
	}
	return u, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*models.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: get user %d: %w", id, err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: list users: %w", err)
	}
	return users, nil
}

func (s *userService) Update(ctx context.Context, id uint, firstName, lastName, imageURL string) (*models.User, error) {
	u, err := buildUser(firstName, lastName, imageURL)
	if err != nil {
		return nil, err
	}
	u.ID = id
	if err := s.users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("service: update user %d: %w", id, err)
	}
	return u, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: delete user %d: %w", id, err)
	}
	return nil
}

// buildUser validates the form values; a blank image falls back to the default avatar.
func buildUser(firstName, lastName, imageURL string) (*models.User, error) {
	first, err := required(firstName, "first name")
	if err != nil {
		return nil, err
	}
	last, err := required(lastName, "last name")
	if err != nil {
		return nil, err
	}
	image := strings.TrimSpace(imageURL)
	if image == "" {
		image = models.DefaultImageURL
	}
	return &models.User{FirstName: first, LastName: last, ImageURL: image}, nil
}
