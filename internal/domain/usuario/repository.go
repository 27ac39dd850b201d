package usuario

import "context"

type UsuarioRepository interface {
	List(ctx context.Context) ([]Usuario, error)
	GetByID(ctx context.Context, id string) (Usuario, error)
	GetByUsuario(ctx context.Context, nombreUsuario string) (Usuario, error)
	ExistsByUsuario(ctx context.Context, nombreUsuario string, excludeID *string) (bool, error)
	Create(ctx context.Context, nuevo Usuario) (Usuario, error)
	Update(ctx context.Context, actualizado Usuario) (Usuario, error)
	Delete(ctx context.Context, id string) error
	CountByRol(ctx context.Context) (map[string]int64, error)
}
