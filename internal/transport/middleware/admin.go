package middleware

import (
	"net/http"

	"github.com/heartmarshall/vault-backend/pkg/ctxutil"
)

// RequireAdmin rejects requests whose context does not carry the admin role
// with 403. It must run after Auth and RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
