package middleware

import (
	"net/http"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/attendance"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/auth"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/user"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

// OwnerOrAdmin allows the user whose id is in the URL, or any admin.
func OwnerOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, _ := claims["role"].(string)
		if role == string(user.RoleAdmin) {
			next.ServeHTTP(w, r)
			return
		}

		callerID, ok := claims["user_id"].(string)
		if !ok || callerID == "" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if callerID != chi.URLParam(r, "userId") {
			response.HandleError(w, attendance.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
