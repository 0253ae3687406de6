package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"brainbloom/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// Injected key type to avoid context collisions
type contextKey string

const identityContextKey = contextKey("identity")

// AuthMiddleware rejects requests without a credential with 401 and
// requests with an invalid credential with 403; callers depend on that
// split. On success the decoded claims are exposed to downstream
// handlers via IdentityFromContext.
func AuthMiddleware(tokens service.TokenService, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn().Str("path", r.URL.Path).Msg("Authorization header missing")
				rejectAccess(w, http.StatusUnauthorized)
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Warn().Str("path", r.URL.Path).Msg("Invalid authorization header")
				rejectAccess(w, http.StatusForbidden)
				return
			}
			claims, err := tokens.Verify(parts[1])
			if err != nil {
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("Invalid token")
				rejectAccess(w, http.StatusForbidden)
				return
			}
			ctx := context.WithValue(r.Context(), identityContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// rejectAccess writes the JSON rejection body clients match on.
func rejectAccess(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized access!"})
}

// IdentityFromContext returns the claims decoded by AuthMiddleware.
func IdentityFromContext(ctx context.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(identityContextKey).(jwt.MapClaims)
	return claims, ok
}
