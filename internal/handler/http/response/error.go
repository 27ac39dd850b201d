package response

import (
	"errors"
	"net/http"

	"github.com/munidigital/papeletas-backend/internal/domain/auth"
	"github.com/munidigital/papeletas-backend/internal/domain/empleado"
	"github.com/munidigital/papeletas-backend/internal/domain/papeleta"
	"github.com/munidigital/papeletas-backend/internal/domain/usuario"
	"github.com/munidigital/papeletas-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid usuario or contrasena")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Papeleta domain errors
	case errors.Is(err, papeleta.ErrPapeletaNotFound):
		NotFound(w, "Papeleta not found")
	case errors.Is(err, papeleta.ErrCodigoExists):
		Conflict(w, "Codigo already registered")

	// Usuario domain errors
	case errors.Is(err, usuario.ErrUsuarioNotFound):
		NotFound(w, "Usuario not found")
	case errors.Is(err, usuario.ErrUsuarioExists):
		Conflict(w, "Usuario already registered")
	case errors.Is(err, usuario.ErrAdminRequired):
		Forbidden(w, "Administrador role required")
	case errors.Is(err, usuario.ErrRegistroRoleRequired):
		Forbidden(w, "Role cannot register papeletas")
	case errors.Is(err, usuario.ErrLecturaRoleRequired):
		Forbidden(w, "An HR role is required")
	case errors.Is(err, usuario.ErrCannotDeleteLastAdmin):
		Conflict(w, "Cannot delete the last administrador")

	// Empleado domain errors
	case errors.Is(err, empleado.ErrEmpleadoNotFound):
		NotFound(w, "Empleado not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
