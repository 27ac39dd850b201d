package empleado

import "context"

type EmpleadoRepository interface {
	GetByDNI(ctx context.Context, dni string) (Empleado, error)
}
