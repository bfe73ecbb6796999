package service

import (
	"context"
	"testing"
	"time"

	"agencyhub/internal/config"
	"agencyhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func hashedPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestLogin_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	user := &models.User{
		ID:       "user-1",
		Email:    "maria@example.com",
		Password: hashedPassword(t, "password123"),
		Role:     models.RoleModel,
		Status:   models.StatusActive,
	}

	mockUserRepo.On("FindByEmail", mock.Anything, "maria@example.com").Return(user, nil)
	mockRefreshTokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.RefreshToken")).Return(nil)
	mockUserRepo.On("UpdateLastLogin", mock.Anything, "user-1").Return(nil)

	accessToken, refreshToken, loggedIn, err := authService.Login(context.Background(), "maria@example.com", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, "user-1", loggedIn.ID)

	claims, err := authService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleModel, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	user := &models.User{
		ID:       "user-1",
		Email:    "maria@example.com",
		Password: hashedPassword(t, "password123"),
		Status:   models.StatusActive,
	}
	mockUserRepo.On("FindByEmail", mock.Anything, "maria@example.com").Return(user, nil)

	_, _, _, err := authService.Login(context.Background(), "maria@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	mockUserRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, _, err := authService.Login(context.Background(), "nobody@example.com", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_SuspendedAccountRejectedEvenWithValidPassword(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	user := &models.User{
		ID:       "user-1",
		Email:    "maria@example.com",
		Password: hashedPassword(t, "password123"),
		Status:   models.StatusSuspended,
	}
	mockUserRepo.On("FindByEmail", mock.Anything, "maria@example.com").Return(user, nil)

	_, _, _, err := authService.Login(context.Background(), "maria@example.com", "password123")

	assert.ErrorIs(t, err, ErrAccountSuspended)
	mockRefreshTokenRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRefreshAccessToken_ExpiredTokenIsRejectedAndDeleted(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	expired := &models.RefreshToken{
		ID:        "rt-1",
		UserID:    "user-1",
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	mockRefreshTokenRepo.On("FindByToken", mock.Anything, "expired-token").Return(expired, nil)
	mockRefreshTokenRepo.On("Delete", mock.Anything, "rt-1").Return(nil)

	_, err := authService.RefreshAccessToken(context.Background(), "expired-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
	mockRefreshTokenRepo.AssertCalled(t, "Delete", mock.Anything, "rt-1")
}

func TestRefreshAccessToken_RevokedTokenIsRejected(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	revoked := &models.RefreshToken{
		ID:        "rt-1",
		UserID:    "user-1",
		Token:     "revoked-token",
		Revoked:   true,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	mockRefreshTokenRepo.On("FindByToken", mock.Anything, "revoked-token").Return(revoked, nil)

	_, err := authService.RefreshAccessToken(context.Background(), "revoked-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRevokeToken_UnknownTokenIsIdempotent(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	mockRefreshTokenRepo.On("FindByToken", mock.Anything, "gone").Return(nil, gorm.ErrRecordNotFound)

	err := authService.RevokeToken(context.Background(), "gone")

	assert.NoError(t, err)
	mockRefreshTokenRepo.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
}

func TestValidateToken_GarbageIsRejected(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	_, err := authService.ValidateToken("not-a-jwt")

	assert.ErrorIs(t, err, ErrInvalidToken)
}
