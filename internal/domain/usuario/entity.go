package usuario

import "time"

type Rol string

const (
	RolAdministrador Rol = "administrador" // manages user accounts
	RolRRHH          Rol = "rrhh"          // registers and edits papeletas
	RolRRHHVista     Rol = "rrhh-vista"    // read-only access to HR views
)

func RolesValidos() []string {
	return []string{string(RolAdministrador), string(RolRRHH), string(RolRRHHVista)}
}

type Usuario struct {
	ID             string
	NombreCompleto string
	Usuario        string
	DNI            string
	Rol            Rol
	PasswordHash   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PuedeRegistrar reports whether the account may create or edit papeletas.
func (u *Usuario) PuedeRegistrar() bool {
	return u.Rol == RolRRHH || u.Rol == RolAdministrador
}

// EsAdministrador reports whether the account manages users.
func (u *Usuario) EsAdministrador() bool {
	return u.Rol == RolAdministrador
}
