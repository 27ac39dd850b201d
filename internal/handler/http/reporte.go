package http

import (
	"log/slog"
	"net/http"

	"github.com/munidigital/papeletas-backend/internal/domain/reporte"
	"github.com/munidigital/papeletas-backend/internal/handler/http/response"
)

type ReporteHandler interface {
	GetPapeletas(w http.ResponseWriter, r *http.Request)
}

type ReporteHandlerImpl struct {
	reporteService reporte.ReporteService
}

func NewReporteHandler(reporteService reporte.ReporteService) ReporteHandler {
	return &ReporteHandlerImpl{
		reporteService: reporteService,
	}
}

// GetPapeletas implements ReporteHandler. It accepts the same filter query
// parameters as the papeletas listing but returns the whole matching set.
func (h *ReporteHandlerImpl) GetPapeletas(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reporteService.Generar(r.Context(), filtroFromQuery(r))
	if err != nil {
		slog.Error("Generate reporte service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rep)
}
