package middleware

import (
	"net/http"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/service"
)

// CSRFMiddleware enforces the X-CSRF-Token header on mutating requests
type CSRFMiddleware struct {
	csrfService *service.CSRFService
}

// NewCSRFMiddleware creates a new CSRF middleware
func NewCSRFMiddleware(csrfService *service.CSRFService) *CSRFMiddleware {
	return &CSRFMiddleware{
		csrfService: csrfService,
	}
}

// Protect validates the CSRF token on state-changing methods. Reads pass
// through untouched. Runs after Authenticate, so the user ID is always in
// the context here.
func (m *CSRFMiddleware) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		userID := GetUserID(r.Context())
		if userID == nil {
			http.Error(w, `{"message": "Unauthorized"}`, http.StatusUnauthorized)
			return
		}

		token := r.Header.Get("X-CSRF-Token")
		if err := m.csrfService.Validate(r.Context(), *userID, token); err != nil {
			// Clients key their token refresh on "CSRF" appearing in the body
			http.Error(w, `{"message": "Invalid CSRF token"}`, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
