package service

import (
	"context"
	"errors"

	"agencyhub/internal/middleware/auth"
	"agencyhub/internal/repository"
)

var ErrWrongPassword = errors.New("current password is incorrect")

// SettingsService covers a user's own profile changes.
type SettingsService interface {
	UpdateProfile(ctx context.Context, userID, name string, avatarURL *string) error
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

type settingsService struct {
	userRepo repository.UserRepository
}

func NewSettingsService(userRepo repository.UserRepository) SettingsService {
	return &settingsService{userRepo: userRepo}
}

func (s *settingsService) UpdateProfile(ctx context.Context, userID, name string, avatarURL *string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}

	user.Name = name
	if avatarURL != nil {
		user.AvatarURL = avatarURL
	}
	return s.userRepo.Update(ctx, user)
}

func (s *settingsService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}

	if err := auth.VerifyPassword(user.Password, currentPassword); err != nil {
		return ErrWrongPassword
	}

	hashedPassword, err := auth.Hashpassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashedPassword
	return s.userRepo.Update(ctx, user)
}
