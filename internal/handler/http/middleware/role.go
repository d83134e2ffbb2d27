package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/wealthzoneai/hrm-core-go/internal/domain/leave"
	"github.com/wealthzoneai/hrm-core-go/internal/handler/http/response"
)

// RequireHR requires the hr role
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "HR access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || leave.Role(role) != leave.RoleHR {
			response.Forbidden(w, "HR access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
