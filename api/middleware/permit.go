package middleware

import (
	"net/http"

	"github.com/angelmondragon/nutritrack-backend/api/responses"
	"github.com/angelmondragon/nutritrack-backend/internal/permissions"
	"github.com/angelmondragon/nutritrack-backend/pkg/logger"
)

// Permit enforces the resource authorization rule for a route. It must run
// after Auth so the principal is present in the context.
func Permit(action permissions.Action, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := PrincipalFromContext(r.Context())
			if err := permissions.Check(action, &principal); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
