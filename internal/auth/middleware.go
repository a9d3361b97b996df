package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/verbo-blog/verbo/internal/platform/httpx"
	"github.com/verbo-blog/verbo/internal/shared"
)

// RequireAuth guards protected routes. It verifies the bearer token from the
// Authorization header and stores its subject in the request context; absent
// or invalid tokens are rejected before the request reaches any handler.
func RequireAuth(issuer *Issuer, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, BearerScheme) {
				httpx.RespondError(w, shared.ErrInvalidToken)
				return
			}
			claims, err := issuer.Verify(strings.TrimPrefix(header, BearerScheme))
			if err != nil {
				if logger != nil {
					logger.Warn("token rejected", slog.String("path", r.URL.Path))
				}
				httpx.RespondError(w, err)
				return
			}
			ctx := shared.ContextWithSubject(r.Context(), claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
