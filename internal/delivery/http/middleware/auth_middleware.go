package middleware

import (
	"context"
	"net/http"
	"strings"

	"binfresh/pkg/jwt"
	"binfresh/pkg/response"
)

type contextKey string

const (
	StaffEmailKey contextKey = "staff_email"
	TokenIDKey    contextKey = "token_id"
)

// AuthMiddleware guards the staff/admin routes with a Bearer access token
type AuthMiddleware struct {
	jwtService *jwt.JWTService
}

func NewAuthMiddleware(jwtService *jwt.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}
		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		ctx := context.WithValue(r.Context(), StaffEmailKey, claims.Email)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStaffEmailFromContext extracts the authenticated staff email
func GetStaffEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(StaffEmailKey).(string)
	return email, ok
}
