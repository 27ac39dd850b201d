package usuario

import "context"

type UsuarioService interface {
	Create(ctx context.Context, req CreateUsuarioRequest) (UsuarioResponse, error)
	List(ctx context.Context) ([]UsuarioResponse, error)
	Update(ctx context.Context, id string, req UpdateUsuarioRequest) (UsuarioResponse, error)
	Delete(ctx context.Context, id string) error
}
