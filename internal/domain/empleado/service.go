package empleado

import "context"

type EmpleadoService interface {
	GetByDNI(ctx context.Context, dni string) (Empleado, error)
}
