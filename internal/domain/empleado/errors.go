package empleado

import "errors"

var ErrEmpleadoNotFound = errors.New("empleado not found")
