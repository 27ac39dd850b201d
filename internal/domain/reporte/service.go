package reporte

import (
	"context"

	"github.com/munidigital/papeletas-backend/internal/domain/papeleta"
)

type ReporteService interface {
	Generar(ctx context.Context, filtro papeleta.Filtro) (Reporte, error)
}
