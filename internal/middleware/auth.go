package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/aurora-studio/site-api/internal/auth"
	"github.com/aurora-studio/site-api/internal/httpx"
	"github.com/aurora-studio/site-api/internal/models"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// ClaimsFrom returns the verified claims Authenticator stored on the
// request, or nil outside an authenticated route.
func ClaimsFrom(ctx context.Context) *auth.Claims {
	c, _ := ctx.Value(claimsKey).(*auth.Claims)
	return c
}

// Authenticator verifies the bearer token and pushes its claims into the
// request context. The token is the only thing the server trusts; whatever
// the client remembers about "who is signed in" carries no weight here.
func Authenticator(issuer *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httpx.Error(w, http.StatusUnauthorized, "Authentication required.")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				httpx.Error(w, http.StatusUnauthorized, "Authentication required.")
				return
			}

			token := strings.TrimSpace(parts[1])
			if token == "" {
				httpx.Error(w, http.StatusUnauthorized, "Authentication required.")
				return
			}

			claims, err := issuer.Verify(token)
			if err != nil {
				httpx.Error(w, http.StatusUnauthorized, "Invalid or expired token.")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects authenticated requests whose token carries none of
// the allowed roles. Must sit behind Authenticator.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	allowed := map[models.Role]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFrom(r.Context())
			if claims == nil {
				httpx.Error(w, http.StatusUnauthorized, "Authentication required.")
				return
			}
			if _, ok := allowed[claims.Role]; !ok {
				httpx.Error(w, http.StatusForbidden, "Admin access required.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
