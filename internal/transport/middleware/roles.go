package middleware

import (
	"net/http"

	"github.com/heartmarshall/reviso-backend/internal/auth"
)

// AgencyOnly rejects client users with 403. Routes behind it expose the
// unfiltered ledger or cross-company data, so the check happens at the
// boundary as well as in the services.
func AgencyOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := auth.RequireAgency(r.Context()); err != nil {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "agency role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
