package listing

import (
	"context"
	"net/http"
	"strings"

	"EstateCatalog/internal/auth"
	"EstateCatalog/pkg/kit"
)

type ctxKey string

const callerKey ctxKey = "caller"

type Caller struct {
	Subject string
}

func CallerFromContext(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey).(Caller)
	return c, ok
}

// AuthJWT guards mutating routes: a valid HS256 bearer token minted
// with the shared secret is required, anything else is 401.
func AuthJWT(jwt *auth.TokenMaker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				kit.WriteError(w, r, http.StatusUnauthorized, "missing token", nil)
				return
			}

			claims, err := jwt.Parse(strings.TrimPrefix(authz, "Bearer "))
			if err != nil || claims.Subject == "" {
				kit.WriteError(w, r, http.StatusUnauthorized, "invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), callerKey, Caller{Subject: claims.Subject})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
