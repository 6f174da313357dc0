package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/practicehub/backend/internal/auth"
)

const identityKey contextKey = "identity"

// Identity is the authenticated caller
type Identity struct {
	UserID int
	Role   auth.Role
}

// TokenValidator validates access tokens
type TokenValidator interface {
	ValidateAccessToken(token string) (int, auth.Role, error)
}

// Auth validates the JWT access token and stores the caller identity in the context
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return RequireRole(validator, auth.RoleUser)
}

// RequireRole validates the JWT access token and checks that the caller's role is >= requiredRole
func RequireRole(validator TokenValidator, requiredRole auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			userID, role, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			if role < requiredRole {
				writeJSONError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), Identity{UserID: userID, Role: role})))
		})
	}
}

// extractToken reads a bearer token from the Authorization header, falling back to the access_token cookie
func extractToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	if cookie, err := r.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}

// WithIdentity stores the caller identity in ctx
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentity retrieves the caller identity from context
func GetIdentity(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
