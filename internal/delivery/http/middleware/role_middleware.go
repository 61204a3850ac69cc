package middleware

import (
	"net/http"

	"clinic-scheduling-api/internal/domain/entity"
	"clinic-scheduling-api/pkg/response"
)

// RequireRole allows the request through when the actor holds any of the
// given roles.
func RequireRole(allowed ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := GetActorFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Actor information not found")
				return
			}

			for _, role := range allowed {
				if actor.Is(role) {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequireAdmin is a convenience middleware for administrative endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdministrative)(next)
}

// RequireProfessional is a convenience middleware for professional-only endpoints
func RequireProfessional(next http.Handler) http.Handler {
	return RequireRole(entity.RoleProfessional)(next)
}

// RequireAdminOrProfessional allows professionals and administrators
func RequireAdminOrProfessional(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdministrative, entity.RoleProfessional)(next)
}
