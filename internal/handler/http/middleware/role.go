package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/munidigital/papeletas-backend/internal/domain/usuario"
	"github.com/munidigital/papeletas-backend/internal/handler/http/response"
)

func rolFromClaims(r *http.Request) (usuario.Rol, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	rolStr, ok := claims["rol"].(string)
	if !ok {
		return "", false
	}
	return usuario.Rol(rolStr), true
}

// RequireAdministrador restricts a route to the user management role.
func RequireAdministrador(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rol, ok := rolFromClaims(r)
		if !ok || rol != usuario.RolAdministrador {
			response.HandleError(w, usuario.ErrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireRegistro restricts a route to roles that may create or edit
// papeletas. The read-only rrhh-vista role is rejected.
func RequireRegistro(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rol, ok := rolFromClaims(r)
		if !ok || (rol != usuario.RolRRHH && rol != usuario.RolAdministrador) {
			response.HandleError(w, usuario.ErrRegistroRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireLectura allows any HR role, including the read-only one.
func RequireLectura(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rol, ok := rolFromClaims(r)
		if !ok {
			response.HandleError(w, usuario.ErrLecturaRoleRequired)
			return
		}

		switch rol {
		case usuario.RolAdministrador, usuario.RolRRHH, usuario.RolRRHHVista:
			next.ServeHTTP(w, r)
		default:
			response.HandleError(w, usuario.ErrLecturaRoleRequired)
		}
	})
}
