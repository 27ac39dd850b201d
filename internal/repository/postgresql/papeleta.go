package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/munidigital/papeletas-backend/internal/domain/papeleta"
	"github.com/munidigital/papeletas-backend/internal/pkg/database"
	"github.com/munidigital/papeletas-backend/internal/pkg/normalize"
)

type papeletaRepositoryImpl struct {
	db *database.DB
}

func NewPapeletaRepository(db *database.DB) papeleta.PapeletaRepository {
	return &papeletaRepositoryImpl{db: db}
}

const papeletaColumns = `
	id, codigo, trabajador, dni, area, cargo, regimen_laboral, oficina_visitar,
	motivo, fundamentacion, to_char(fecha, 'YYYY-MM-DD'), hora_salida, hora_retorno, created_at
`

// scanPapeleta reads one row and converts the stored times to the wall clock
// form the rest of the system works with. This is the only place stored time
// strings are interpreted.
func scanPapeleta(row pgx.Row) (papeleta.Papeleta, error) {
	var p papeleta.Papeleta
	var horaSalida string
	var horaRetorno *string

	err := row.Scan(
		&p.ID,
		&p.Codigo,
		&p.Trabajador,
		&p.DNI,
		&p.Area,
		&p.Cargo,
		&p.RegimenLaboral,
		&p.OficinaVisitar,
		&p.Motivo,
		&p.Fundamentacion,
		&p.Fecha,
		&horaSalida,
		&horaRetorno,
		&p.FechaCreacion,
	)
	if err != nil {
		return papeleta.Papeleta{}, err
	}

	p.HoraSalida = normalize.HoraDisplay(horaSalida)
	if horaRetorno != nil {
		display := normalize.HoraDisplay(*horaRetorno)
		p.HoraRetorno = &display
	}
	return p, nil
}

// ListAll implements papeleta.PapeletaRepository. Newest first.
func (r *papeletaRepositoryImpl) ListAll(ctx context.Context) ([]papeleta.Papeleta, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + papeletaColumns + `
		FROM papeletas
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	papeletas := make([]papeleta.Papeleta, 0)
	for rows.Next() {
		p, err := scanPapeleta(rows)
		if err != nil {
			return nil, err
		}
		papeletas = append(papeletas, p)
	}
	return papeletas, rows.Err()
}

// GetByID implements papeleta.PapeletaRepository.
func (r *papeletaRepositoryImpl) GetByID(ctx context.Context, id string) (papeleta.Papeleta, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + papeletaColumns + `
		FROM papeletas
		WHERE id = $1
	`

	p, err := scanPapeleta(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return papeleta.Papeleta{}, papeleta.ErrPapeletaNotFound
		}
		return papeleta.Papeleta{}, err
	}
	return p, nil
}

// ExistsByCodigo implements papeleta.PapeletaRepository.
func (r *papeletaRepositoryImpl) ExistsByCodigo(ctx context.Context, codigo string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	var err error
	if excludeID != nil {
		query := `SELECT EXISTS(SELECT 1 FROM papeletas WHERE codigo = $1 AND id <> $2)`
		err = q.QueryRow(ctx, query, codigo, *excludeID).Scan(&exists)
	} else {
		query := `SELECT EXISTS(SELECT 1 FROM papeletas WHERE codigo = $1)`
		err = q.QueryRow(ctx, query, codigo).Scan(&exists)
	}
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements papeleta.PapeletaRepository. Times are stored in the
// canonical backend form; readers get them back through scanPapeleta.
func (r *papeletaRepositoryImpl) Create(ctx context.Context, nueva papeleta.Papeleta) (papeleta.Papeleta, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO papeletas (
			id, codigo, trabajador, dni, area, cargo, regimen_laboral, oficina_visitar,
			motivo, fundamentacion, fecha, hora_salida, hora_retorno
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + papeletaColumns + `
	`

	ahora := time.Now()
	horaSalida := normalize.HoraBackend(nueva.HoraSalida, ahora)
	var horaRetorno *string
	if nueva.HoraRetorno != nil {
		retorno := normalize.HoraBackend(*nueva.HoraRetorno, ahora)
		horaRetorno = &retorno
	}

	return scanPapeleta(q.QueryRow(ctx, query,
		nueva.ID,
		nueva.Codigo,
		nueva.Trabajador,
		nueva.DNI,
		nueva.Area,
		nueva.Cargo,
		nueva.RegimenLaboral,
		nueva.OficinaVisitar,
		nueva.Motivo,
		nueva.Fundamentacion,
		nueva.Fecha,
		horaSalida,
		horaRetorno,
	))
}

// Update implements papeleta.PapeletaRepository.
func (r *papeletaRepositoryImpl) Update(ctx context.Context, actualizada papeleta.Papeleta) (papeleta.Papeleta, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE papeletas
		SET codigo = $1, trabajador = $2, dni = $3, area = $4, cargo = $5,
			regimen_laboral = $6, oficina_visitar = $7, motivo = $8,
			fundamentacion = $9, fecha = $10, hora_salida = $11, hora_retorno = $12
		WHERE id = $13
		RETURNING ` + papeletaColumns + `
	`

	ahora := time.Now()
	horaSalida := normalize.HoraBackend(actualizada.HoraSalida, ahora)
	var horaRetorno *string
	if actualizada.HoraRetorno != nil {
		retorno := normalize.HoraBackend(*actualizada.HoraRetorno, ahora)
		horaRetorno = &retorno
	}

	p, err := scanPapeleta(q.QueryRow(ctx, query,
		actualizada.Codigo,
		actualizada.Trabajador,
		actualizada.DNI,
		actualizada.Area,
		actualizada.Cargo,
		actualizada.RegimenLaboral,
		actualizada.OficinaVisitar,
		actualizada.Motivo,
		actualizada.Fundamentacion,
		actualizada.Fecha,
		horaSalida,
		horaRetorno,
		actualizada.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return papeleta.Papeleta{}, papeleta.ErrPapeletaNotFound
		}
		return papeleta.Papeleta{}, err
	}
	return p, nil
}

// CountAll implements papeleta.PapeletaRepository.
func (r *papeletaRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM papeletas`).Scan(&total)
	return total, err
}

// CountSinRetornoHoy implements papeleta.PapeletaRepository.
func (r *papeletaRepositoryImpl) CountSinRetornoHoy(ctx context.Context, fecha string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM papeletas
		WHERE fecha = $1 AND hora_retorno IS NULL
	`

	var total int64
	err := q.QueryRow(ctx, query, fecha).Scan(&total)
	return total, err
}
