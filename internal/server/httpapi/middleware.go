package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/fundacionraices/backend/internal/common"
	"github.com/fundacionraices/backend/internal/logging"
	"github.com/fundacionraices/backend/internal/server/auth"
)

type contextKey int

const identityContextKey contextKey = iota

// IdentityFromContext returns the verified identity placed by Authn, or nil
// when the request did not pass through the guard.
func IdentityFromContext(ctx context.Context) *auth.Identity {
	id, _ := ctx.Value(identityContextKey).(*auth.Identity)
	return id
}

// RolesSource answers "what roles does this user have right now". Guards
// query it on every request instead of trusting anything in the token.
type RolesSource interface {
	Roles(ctx context.Context, userID string) ([]string, error)
}

// Authn verifies the Bearer token and stores the identity in the request
// context. A missing header and an invalid/expired token both end the
// request with 401; the response distinguishes only those two cases.
func Authn(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				writeError(w, common.ErrorMissingToken)
				return
			}

			identity, err := auth.ParseToken(strings.TrimPrefix(h, "Bearer "), secretKey)
			if err != nil {
				writeError(w, common.ErrorInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles admits the request only when the user currently holds at
// least one of the allowed roles. Roles come from the store, never from the
// token, so a revocation takes effect on the next request. A role lookup
// failure is a 500, not a 403: the guard refuses to guess.
func RequireRoles(src RolesSource, log logging.Logger, allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := IdentityFromContext(r.Context())
			if identity == nil {
				writeError(w, common.ErrorMissingToken)
				return
			}

			roles, err := src.Roles(r.Context(), identity.Subject)
			if err != nil {
				log.Error(r.Context(), "role lookup failed", "user", identity.Subject, "error", err)
				writeError(w, common.ErrorInternal)
				return
			}

			for _, role := range roles {
				if _, ok := set[role]; ok {
					next.ServeHTTP(w, r)
					return
				}
			}

			writeError(w, common.ErrorForbidden)
		})
	}
}
