package middleware

import (
	"net/http"

	"github.com/iho/tradeledger/internal/domain"
)

// UserIDHeader carries the acting user's identifier. Requests without it are
// attributed to the system principal when they reach the activity trail.
const UserIDHeader = "X-User-ID"

// Principal attaches the acting principal to the request context.
func Principal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(UserIDHeader)
		if userID != "" {
			ctx := domain.WithPrincipal(r.Context(), domain.Principal{UserID: userID})
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}
