package empleado

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/munidigital/papeletas-backend/internal/domain/empleado"
	"github.com/munidigital/papeletas-backend/internal/pkg/normalize"
	"github.com/munidigital/papeletas-backend/internal/pkg/validator"
)

type EmpleadoServiceImpl struct {
	empleado.EmpleadoRepository
}

func NewEmpleadoService(empleadoRepository empleado.EmpleadoRepository) empleado.EmpleadoService {
	return &EmpleadoServiceImpl{
		EmpleadoRepository: empleadoRepository,
	}
}

// GetByDNI implements empleado.EmpleadoService.
func (s *EmpleadoServiceImpl) GetByDNI(ctx context.Context, dni string) (empleado.Empleado, error) {
	dni = normalize.DNI(dni)
	if !validator.IsValidDNI(dni) {
		return empleado.Empleado{}, validator.ValidationErrors{{
			Field:   "dni",
			Message: "dni must be exactly 8 digits",
		}}
	}

	emp, err := s.EmpleadoRepository.GetByDNI(ctx, dni)
	if err != nil {
		if err == pgx.ErrNoRows || err == empleado.ErrEmpleadoNotFound {
			return empleado.Empleado{}, empleado.ErrEmpleadoNotFound
		}
		return empleado.Empleado{}, fmt.Errorf("failed to get empleado: %w", err)
	}
	return emp, nil
}
