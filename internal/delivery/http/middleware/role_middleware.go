package middleware

import (
	"net/http"

	"medicita/internal/domain/entity"
	"medicita/pkg/response"
)

// RequireRole creates a middleware that checks if the session has any of the
// allowed roles. Refused users are pointed at their home view.
func RequireRole(allowed ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := GetSessionFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "No active session")
				return
			}

			for _, role := range allowed {
				if session.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.ForbiddenWithRedirect(w, "You don't have permission to access this resource", string(session.Role.HomeView()))
		})
	}
}

// RequireView gates a route behind the same rules the clinic's navigation uses
func RequireView(view entity.View) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := GetSessionFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "No active session")
				return
			}

			if !session.Role.CanAccess(view) {
				response.ForbiddenWithRedirect(w, "You don't have permission to access this resource", string(session.Role.HomeView()))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}
