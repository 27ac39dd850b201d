package usuario

import (
	"github.com/munidigital/papeletas-backend/internal/pkg/normalize"
	"github.com/munidigital/papeletas-backend/internal/pkg/validator"
)

// UsuarioResponse represents an account in API responses. The DNI is profile
// data here; the credential derived from it is never exposed.
type UsuarioResponse struct {
	ID             string `json:"id"`
	NombreCompleto string `json:"nombre_completo"`
	Usuario        string `json:"usuario"`
	DNI            string `json:"dni"`
	Rol            string `json:"rol"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type CreateUsuarioRequest struct {
	NombreCompleto string `json:"nombre_completo"`
	Usuario        string `json:"usuario"`
	DNI            string `json:"dni"`
	Rol            string `json:"rol"`
}

func (r *CreateUsuarioRequest) Validate() error {
	var errs validator.ValidationErrors

	r.DNI = normalize.DNI(r.DNI)

	if validator.IsEmpty(r.NombreCompleto) {
		errs = append(errs, validator.ValidationError{
			Field:   "nombre_completo",
			Message: "nombre_completo is required",
		})
	} else if len(r.NombreCompleto) < 3 {
		errs = append(errs, validator.ValidationError{
			Field:   "nombre_completo",
			Message: "nombre_completo must be at least 3 characters",
		})
	}

	if validator.IsEmpty(r.Usuario) {
		errs = append(errs, validator.ValidationError{
			Field:   "usuario",
			Message: "usuario is required",
		})
	} else if !validator.IsValidUsuario(r.Usuario) {
		errs = append(errs, validator.ValidationError{
			Field:   "usuario",
			Message: "usuario must be 3-50 characters: letters, digits, '.', '_' or '-'",
		})
	}

	if !validator.IsValidDNI(r.DNI) {
		errs = append(errs, validator.ValidationError{
			Field:   "dni",
			Message: "dni must be exactly 8 digits",
		})
	}

	if validator.IsEmpty(r.Rol) {
		errs = append(errs, validator.ValidationError{
			Field:   "rol",
			Message: "rol is required",
		})
	} else if !validator.IsInSlice(r.Rol, RolesValidos()) {
		errs = append(errs, validator.ValidationError{
			Field:   "rol",
			Message: "rol must be one of: administrador, rrhh, rrhh-vista",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateUsuarioRequest carries a partial update; nil fields are untouched.
type UpdateUsuarioRequest struct {
	NombreCompleto *string `json:"nombre_completo,omitempty"`
	Usuario        *string `json:"usuario,omitempty"`
	DNI            *string `json:"dni,omitempty"`
	Rol            *string `json:"rol,omitempty"`
}

func (r *UpdateUsuarioRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.NombreCompleto != nil && len(*r.NombreCompleto) < 3 {
		errs = append(errs, validator.ValidationError{
			Field:   "nombre_completo",
			Message: "nombre_completo must be at least 3 characters",
		})
	}

	if r.Usuario != nil && !validator.IsValidUsuario(*r.Usuario) {
		errs = append(errs, validator.ValidationError{
			Field:   "usuario",
			Message: "usuario must be 3-50 characters: letters, digits, '.', '_' or '-'",
		})
	}

	if r.DNI != nil {
		dni := normalize.DNI(*r.DNI)
		r.DNI = &dni
		if !validator.IsValidDNI(dni) {
			errs = append(errs, validator.ValidationError{
				Field:   "dni",
				Message: "dni must be exactly 8 digits",
			})
		}
	}

	if r.Rol != nil && !validator.IsInSlice(*r.Rol, RolesValidos()) {
		errs = append(errs, validator.ValidationError{
			Field:   "rol",
			Message: "rol must be one of: administrador, rrhh, rrhh-vista",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
