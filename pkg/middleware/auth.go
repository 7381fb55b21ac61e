package middleware

import (
	"net/http"

	"movie-catalog/pkg/auth"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// TokenCookie is the cookie the authorizer reads the session token from.
const TokenCookie = "token"

// CookieAuth validates the session token cookie against the identity
// provider. Requests without a valid, unexpired token are answered 401
// before the handler runs.
func CookieAuth(verifier auth.TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(TokenCookie)
			if err != nil || cookie.Value == "" {
				utils.ResponseUnauthorized(w, "Missing token cookie")
				return
			}

			claims, err := verifier.Verify(r.Context(), cookie.Value)
			if err != nil {
				logger.Warn("Token verification failed",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetClaimsContext(r.Context(), claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
