package reporte

import "github.com/munidigital/papeletas-backend/internal/domain/papeleta"

// Reporte is the export payload for the slip report screen. It carries
// the full filtered set, without pagination, plus a human readable
// summary of the filters that produced it.
type Reporte struct {
	GeneradoEn       string                      `json:"generado_en"`
	FiltrosAplicados string                      `json:"filtros_aplicados"`
	TotalRegistros   int                         `json:"total_registros"`
	Papeletas        []papeleta.PapeletaResponse `json:"papeletas"`
}
