package http

import (
	"context"
	"net/http"
	"strings"

	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/security"

	"github.com/google/uuid"
)

type contextKey string

const (
	claimsContextKey    contextKey = "claims"
	requestIDContextKey contextKey = "request_id"
)

// RequestID assigns each request a correlation id and logs the call.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
		logger.WithRequest(requestID).Debug("Handling request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthMiddleware validates bearer tokens and stores the employee claims on
// the request context.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Require wraps a handler so only authenticated employees holding one of
// the given roles can reach it.
func (m *AuthMiddleware) Require(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing authorization header"})
				return
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid authorization header format"})
				return
			}

			claims, err := m.tokens.ValidateToken(tokenString)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
				return
			}

			if len(roles) > 0 && !claims.HasRole(roles...) {
				writeJSON(w, http.StatusForbidden, errorResponse{Error: "insufficient role"})
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the authenticated employee claims, or nil when
// the request skipped authentication.
func ClaimsFromContext(ctx context.Context) *security.EmployeeClaims {
	claims, _ := ctx.Value(claimsContextKey).(*security.EmployeeClaims)
	return claims
}

// employeeName returns the acting employee's display name for audit fields.
func employeeName(ctx context.Context) string {
	if claims := ClaimsFromContext(ctx); claims != nil {
		return claims.EmployeeName()
	}
	return ""
}
