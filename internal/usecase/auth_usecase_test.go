package usecase

import (
	"context"
	"testing"
	"time"

	"binfresh/config"
	"binfresh/internal/delivery/dto"
	"binfresh/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUsecase(t *testing.T) AuthUsecase {
	t.Helper()
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})
	uc, err := NewAuthUsecase(quietLogger(), jwtService, config.AdminConfig{
		Email:    "Admin@Example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	return uc
}

func TestAuthLogin_IssuesTokenPair(t *testing.T) {
	uc := newAuthUsecase(t)

	tokens, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
	assert.Equal(t, int64(900), tokens.ExpiresIn)
}

func TestAuthLogin_EmailIsCaseInsensitive(t *testing.T) {
	uc := newAuthUsecase(t)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ADMIN@EXAMPLE.COM",
		Password: "hunter22",
	})
	assert.NoError(t, err)
}

func TestAuthLogin_RejectsWrongPassword(t *testing.T) {
	uc := newAuthUsecase(t)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthLogin_RejectsUnknownEmail(t *testing.T) {
	uc := newAuthUsecase(t)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "intruder@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthRefresh_AcceptsRefreshToken(t *testing.T) {
	uc := newAuthUsecase(t)

	tokens, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	refreshed, err := uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: tokens.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestAuthRefresh_RejectsAccessToken(t *testing.T) {
	uc := newAuthUsecase(t)

	tokens, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	// An access token must not be usable as a refresh token
	_, err = uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: tokens.AccessToken,
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthRefresh_RejectsGarbage(t *testing.T) {
	uc := newAuthUsecase(t)

	_, err := uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: "not.a.token",
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
