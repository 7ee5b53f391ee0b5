package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

const bearerPrefix = "bearer "

var errMissingToken = fmt.Errorf("missing bearer token: %w", domain.ErrUnauthorized)

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying the authenticated caller.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the caller stored by Authenticate.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}

// Authenticate resolves the Authorization bearer token to a principal and
// stores it in the request context. Requests without a valid token get a 401
// problem response. The context logger is enriched with the caller's user ID
// and role.
func Authenticate(auth ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
				dto.WriteErrorResponse(w, r, errMissingToken)
				return
			}

			principal, err := auth.Authenticate(ctx, token)
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthorized) {
					err = fmt.Errorf("authenticate: %w: %w", domain.ErrUnauthorized, err)
				}
				logging.FromContext(ctx).WarnContext(ctx, "authentication failed",
					slog.Any("error", err),
				)
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token"`)
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx = logging.With(ctx,
				slog.String("user_id", principal.UserID),
				slog.String("role", principal.Role.String()),
			)
			ctx = WithPrincipal(ctx, *principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects authenticated callers whose role is not in roles with
// a 403. It must run after Authenticate.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				dto.WriteErrorResponse(w, r, errMissingToken)
				return
			}
			if !slices.Contains(roles, principal.Role) {
				dto.WriteErrorResponse(w, r, fmt.Errorf("role %q may not access this resource: %w",
					principal.Role, domain.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
