package papeleta

import "context"

// ListResult pairs a page of slips with its pagination metadata.
type ListResult struct {
	Papeletas  []PapeletaResponse
	TotalItems int64
	TotalPages int
	Page       int
	Limit      int
}

type PapeletaService interface {
	Create(ctx context.Context, req CreatePapeletaRequest) (PapeletaResponse, error)
	List(ctx context.Context, filtro Filtro) (ListResult, error)
	GetByID(ctx context.Context, id string) (PapeletaResponse, error)
	Update(ctx context.Context, id string, req UpdatePapeletaRequest) (PapeletaResponse, error)
}
