package usecase

import (
	"context"
	"errors"
	"strings"

	"binfresh/config"
	"binfresh/internal/delivery/dto"
	"binfresh/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthUsecase authenticates staff against the configured admin account
// and issues the JWT pair the admin routes require.
type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
}

type authUsecase struct {
	log          *logrus.Logger
	jwtService   *jwt.JWTService
	adminEmail   string
	passwordHash []byte
}

func NewAuthUsecase(log *logrus.Logger, jwtService *jwt.JWTService, cfg config.AdminConfig) (AuthUsecase, error) {
	// Hash once at startup so the request path never compares plaintext
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &authUsecase{
		log:          log,
		jwtService:   jwtService,
		adminEmail:   strings.ToLower(cfg.Email),
		passwordHash: hash,
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if strings.ToLower(req.Email) != u.adminEmail {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(req.Password)); err != nil {
		u.log.Warnf("Failed admin login attempt for %s", req.Email)
		return nil, ErrInvalidCredentials
	}
	return u.issueTokens(req.Email)
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}
	return u.issueTokens(claims.Email)
}

func (u *authUsecase) issueTokens(email string) (*dto.TokenResponse, error) {
	accessToken, _, err := u.jwtService.GenerateAccessToken(email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}
	refreshToken, _, err := u.jwtService.GenerateRefreshToken(email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
