package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/munidigital/papeletas-backend/internal/domain/usuario"
	"github.com/munidigital/papeletas-backend/internal/pkg/database"
)

type usuarioRepositoryImpl struct {
	db *database.DB
}

func NewUsuarioRepository(db *database.DB) usuario.UsuarioRepository {
	return &usuarioRepositoryImpl{db: db}
}

const usuarioColumns = `
	id, nombre_completo, usuario, dni, rol, password_hash, created_at, updated_at
`

func scanUsuario(row pgx.Row) (usuario.Usuario, error) {
	var u usuario.Usuario
	err := row.Scan(
		&u.ID,
		&u.NombreCompleto,
		&u.Usuario,
		&u.DNI,
		&u.Rol,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// List implements usuario.UsuarioRepository.
func (r *usuarioRepositoryImpl) List(ctx context.Context) ([]usuario.Usuario, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + usuarioColumns + `
		FROM usuarios
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usuarios := make([]usuario.Usuario, 0)
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, err
		}
		usuarios = append(usuarios, u)
	}
	return usuarios, rows.Err()
}

// GetByID implements usuario.UsuarioRepository.
func (r *usuarioRepositoryImpl) GetByID(ctx context.Context, id string) (usuario.Usuario, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + usuarioColumns + `
		FROM usuarios
		WHERE id = $1
	`

	u, err := scanUsuario(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return usuario.Usuario{}, usuario.ErrUsuarioNotFound
		}
		return usuario.Usuario{}, err
	}
	return u, nil
}

// GetByUsuario implements usuario.UsuarioRepository.
func (r *usuarioRepositoryImpl) GetByUsuario(ctx context.Context, nombreUsuario string) (usuario.Usuario, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + usuarioColumns + `
		FROM usuarios
		WHERE usuario = $1
	`

	u, err := scanUsuario(q.QueryRow(ctx, query, nombreUsuario))
	if err != nil {
		if err == pgx.ErrNoRows {
			return usuario.Usuario{}, usuario.ErrUsuarioNotFound
		}
		return usuario.Usuario{}, err
	}
	return u, nil
}

// ExistsByUsuario implements usuario.UsuarioRepository.
func (r *usuarioRepositoryImpl) ExistsByUsuario(ctx context.Context, nombreUsuario string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	var err error
	if excludeID != nil {
		query := `SELECT EXISTS(SELECT 1 FROM usuarios WHERE usuario = $1 AND id <> $2)`
		err = q.QueryRow(ctx, query, nombreUsuario, *excludeID).Scan(&exists)
	} else {
		query := `SELECT EXISTS(SELECT 1 FROM usuarios WHERE usuario = $1)`
		err = q.QueryRow(ctx, query, nombreUsuario).Scan(&exists)
	}
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements usuario.UsuarioRepository.
func (r *usuarioRepositoryImpl) Create(ctx context.Context, nuevo usuario.Usuario) (usuario.Usuario, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO usuarios (id, nombre_completo, usuario, dni, rol, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + usuarioColumns + `
	`

	return scanUsuario(q.QueryRow(ctx, query,
		nuevo.ID,
		nuevo.NombreCompleto,
		nuevo.Usuario,
		nuevo.DNI,
		string(nuevo.Rol),
		nuevo.PasswordHash,
	))
}

// Update implements usuario.UsuarioRepository.
func (r *usuarioRepositoryImpl) Update(ctx context.Context, actualizado usuario.Usuario) (usuario.Usuario, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE usuarios
		SET nombre_completo = $1, usuario = $2, dni = $3, rol = $4,
			password_hash = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + usuarioColumns + `
	`

	u, err := scanUsuario(q.QueryRow(ctx, query,
		actualizado.NombreCompleto,
		actualizado.Usuario,
		actualizado.DNI,
		string(actualizado.Rol),
		actualizado.PasswordHash,
		actualizado.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return usuario.Usuario{}, usuario.ErrUsuarioNotFound
		}
		return usuario.Usuario{}, err
	}
	return u, nil
}

// Delete implements usuario.UsuarioRepository.
func (r *usuarioRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usuario.ErrUsuarioNotFound
	}
	return nil
}

// CountByRol implements usuario.UsuarioRepository.
func (r *usuarioRepositoryImpl) CountByRol(ctx context.Context) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT rol, COUNT(*) FROM usuarios GROUP BY rol`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	porRol := make(map[string]int64)
	for rows.Next() {
		var rol string
		var total int64
		if err := rows.Scan(&rol, &total); err != nil {
			return nil, err
		}
		porRol[rol] = total
	}
	return porRol, rows.Err()
}
