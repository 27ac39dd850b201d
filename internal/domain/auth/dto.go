package auth

import (
	"github.com/munidigital/papeletas-backend/internal/pkg/validator"
)

type LoginRequest struct {
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contrasena"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Usuario) {
		errs = append(errs, validator.ValidationError{
			Field:   "usuario",
			Message: "usuario is required",
		})
	}

	if validator.IsEmpty(r.Contrasena) {
		errs = append(errs, validator.ValidationError{
			Field:   "contrasena",
			Message: "contrasena is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	AccessToken           string   `json:"access_token"`
	AccessTokenExpiresIn  int64    `json:"access_token_expires_in"`
	RefreshToken          string   `json:"-"` // delivered via cookie
	RefreshTokenExpiresIn int64    `json:"-"`
	Usuario               UserData `json:"user_data"`
}

// UserData is the session profile the frontend keeps after login.
type UserData struct {
	ID             string `json:"id"`
	NombreCompleto string `json:"nombre_completo"`
	Usuario        string `json:"usuario"`
	Rol            string `json:"rol"`
}

type RefreshResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}
