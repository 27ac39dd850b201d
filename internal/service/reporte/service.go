package reporte

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/munidigital/papeletas-backend/internal/domain/papeleta"
	"github.com/munidigital/papeletas-backend/internal/domain/reporte"
	papeletasvc "github.com/munidigital/papeletas-backend/internal/service/papeleta"
)

type ReporteServiceImpl struct {
	papeletaRepo papeleta.PapeletaRepository
}

func NewReporteService(papeletaRepo papeleta.PapeletaRepository) reporte.ReporteService {
	return &ReporteServiceImpl{
		papeletaRepo: papeletaRepo,
	}
}

// Generar implements reporte.ReporteService. It runs the same filter engine
// the listing uses but returns every match, unpaginated, for export.
func (s *ReporteServiceImpl) Generar(ctx context.Context, filtro papeleta.Filtro) (reporte.Reporte, error) {
	if err := filtro.Validate(); err != nil {
		return reporte.Reporte{}, err
	}

	snapshot, err := s.papeletaRepo.ListAll(ctx)
	if err != nil {
		return reporte.Reporte{}, fmt.Errorf("failed to list papeletas: %w", err)
	}

	filtradas := papeletasvc.Filtrar(snapshot, filtro)

	respuestas := make([]papeleta.PapeletaResponse, 0, len(filtradas))
	for _, p := range filtradas {
		respuestas = append(respuestas, papeleta.PapeletaResponse{
			ID:             p.ID,
			Codigo:         p.Codigo,
			Trabajador:     p.Trabajador,
			DNI:            p.DNI,
			Area:           p.Area,
			Cargo:          p.Cargo,
			RegimenLaboral: p.RegimenLaboral,
			OficinaVisitar: p.OficinaVisitar,
			Motivo:         p.Motivo,
			Fundamentacion: p.Fundamentacion,
			Fecha:          p.Fecha,
			HoraSalida:     p.HoraSalida,
			HoraRetorno:    p.HoraRetorno,
			FechaCreacion:  p.FechaCreacion.Format(time.RFC3339),
		})
	}

	return reporte.Reporte{
		GeneradoEn:       time.Now().Format(time.RFC3339),
		FiltrosAplicados: ResumenFiltros(filtro),
		TotalRegistros:   len(respuestas),
		Papeletas:        respuestas,
	}, nil
}

// ResumenFiltros renders the applied filters as the report header line.
// With no filters it reads "Ninguno".
func ResumenFiltros(f papeleta.Filtro) string {
	var partes []string

	if f.DNI != "" {
		partes = append(partes, "DNI: "+f.DNI)
	}
	if f.FechaInicio != "" {
		partes = append(partes, "Desde: "+f.FechaInicio)
	}
	if f.FechaFin != "" {
		partes = append(partes, "Hasta: "+f.FechaFin)
	}
	if f.Motivo != "" {
		partes = append(partes, "Motivo: "+f.Motivo)
	}

	if len(partes) == 0 {
		return "Ninguno"
	}
	return strings.Join(partes, " | ")
}
