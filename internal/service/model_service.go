package service

import (
	"context"
	"errors"

	"agencyhub/internal/middleware/auth"
	"agencyhub/internal/models"
	"agencyhub/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

// ModelService is the admin-facing management of model accounts.
type ModelService interface {
	Create(ctx context.Context, name, email, password string) (*models.User, error)
	Update(ctx context.Context, id, name, email, password string) error
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type modelService struct {
	userRepo repository.UserRepository
}

func NewModelService(userRepo repository.UserRepository) ModelService {
	return &modelService{userRepo: userRepo}
}

func (s *modelService) Create(ctx context.Context, name, email, password string) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailInUse
	}

	hashedPassword, err := auth.Hashpassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		Role:     models.RoleModel,
		Status:   models.StatusActive,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *modelService) Update(ctx context.Context, id, name, email, password string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return ErrUserNotFound
	}

	// email must stay unique across other users
	if other, err := s.userRepo.FindByEmail(ctx, email); err == nil && other.ID != id {
		return ErrEmailInUse
	}

	user.Name = name
	user.Email = email
	if password != "" {
		hashedPassword, err := auth.Hashpassword(password)
		if err != nil {
			return err
		}
		user.Password = hashedPassword
	}

	return s.userRepo.Update(ctx, user)
}

func (s *modelService) SetStatus(ctx context.Context, id, status string) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return ErrUserNotFound
	}
	return s.userRepo.UpdateStatus(ctx, id, status)
}

func (s *modelService) Delete(ctx context.Context, id string) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(ctx, id)
}

func (s *modelService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.ListByRole(ctx, models.RoleModel)
}

func (s *modelService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}
