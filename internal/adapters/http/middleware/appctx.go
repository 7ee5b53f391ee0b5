package middleware

import (
	"log/slog"
	"net/http"

	appctx "github.com/jsamuelsen11/taskflow-service/internal/app/context"
)

// AppContext gives each request a fresh RequestContext for services to
// memoize lookups and stage writes in. When the handler returns, staged
// actions that were never committed are dropped with a warning; they point
// at a service that bailed out between staging and Commit.
func AppContext(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(r.Context(), rc)))

			if dropped := rc.Discard(); len(dropped) > 0 {
				logger.WarnContext(r.Context(), "discarded uncommitted actions",
					slog.String("request_id", RequestIDFromContext(r.Context())),
					slog.String("path", r.URL.Path),
					slog.Any("actions", dropped),
				)
			}
		})
	}
}
