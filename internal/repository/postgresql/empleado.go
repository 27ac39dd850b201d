package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/munidigital/papeletas-backend/internal/domain/empleado"
	"github.com/munidigital/papeletas-backend/internal/pkg/database"
)

type empleadoRepositoryImpl struct {
	db *database.DB
}

func NewEmpleadoRepository(db *database.DB) empleado.EmpleadoRepository {
	return &empleadoRepositoryImpl{db: db}
}

// GetByDNI implements empleado.EmpleadoRepository.
func (r *empleadoRepositoryImpl) GetByDNI(ctx context.Context, dni string) (empleado.Empleado, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT dni, nombre_completo, area, cargo, regimen_laboral
		FROM empleados
		WHERE dni = $1
	`

	var e empleado.Empleado
	err := q.QueryRow(ctx, query, dni).Scan(
		&e.DNI,
		&e.NombreCompleto,
		&e.Area,
		&e.Cargo,
		&e.RegimenLaboral,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return empleado.Empleado{}, empleado.ErrEmpleadoNotFound
		}
		return empleado.Empleado{}, err
	}
	return e, nil
}
