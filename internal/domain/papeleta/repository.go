package papeleta

import "context"

type PapeletaRepository interface {
	// ListAll returns the full snapshot ordered by fecha_creacion DESC.
	// Filtering and pagination happen in memory, over this snapshot.
	ListAll(ctx context.Context) ([]Papeleta, error)
	GetByID(ctx context.Context, id string) (Papeleta, error)
	ExistsByCodigo(ctx context.Context, codigo string, excludeID *string) (bool, error)
	Create(ctx context.Context, nueva Papeleta) (Papeleta, error)
	Update(ctx context.Context, actualizada Papeleta) (Papeleta, error)
	CountAll(ctx context.Context) (int64, error)
	CountSinRetornoHoy(ctx context.Context, fecha string) (int64, error)
}
