package usuario

import "errors"

var (
	ErrUsuarioNotFound       = errors.New("usuario not found")
	ErrUsuarioExists         = errors.New("usuario already registered")
	ErrAdminRequired         = errors.New("administrador role required")
	ErrRegistroRoleRequired  = errors.New("rrhh role required")
	ErrLecturaRoleRequired   = errors.New("an hr role is required")
	ErrCannotDeleteLastAdmin = errors.New("cannot delete the last administrador")
)
