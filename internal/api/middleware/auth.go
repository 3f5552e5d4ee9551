package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/service"
)

// Context keys
type contextKey string

const (
	// UserIDKey holds the authenticated user's ID
	UserIDKey contextKey = "user_id"
)

// AuthMiddleware provides authentication middleware
type AuthMiddleware struct {
	authService *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authService *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Authenticate validates the Bearer token and stores the user ID in the
// request context
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var userID *uuid.UUID

		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			id, err := m.authService.ValidateToken(token)
			if err == nil && id != nil {
				userID = id
			}
		}

		if userID == nil {
			http.Error(w, `{"message": "Unauthorized"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user ID from context
func GetUserID(ctx context.Context) *uuid.UUID {
	if id, ok := ctx.Value(UserIDKey).(*uuid.UUID); ok {
		return id
	}
	return nil
}
