package http

import (
	"log/slog"
	"net/http"

	"github.com/munidigital/papeletas-backend/internal/domain/estadisticas"
	"github.com/munidigital/papeletas-backend/internal/handler/http/response"
)

type EstadisticasHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	GetPanelAdmin(w http.ResponseWriter, r *http.Request)
}

type EstadisticasHandlerImpl struct {
	estadisticasService estadisticas.EstadisticasService
}

func NewEstadisticasHandler(estadisticasService estadisticas.EstadisticasService) EstadisticasHandler {
	return &EstadisticasHandlerImpl{
		estadisticasService: estadisticasService,
	}
}

// Get implements EstadisticasHandler. An optional mes parameter (YYYY-MM)
// restricts every view to that month.
func (h *EstadisticasHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	mes := r.URL.Query().Get("mes")

	stats, err := h.estadisticasService.GetEstadisticas(r.Context(), mes)
	if err != nil {
		slog.Error("Get estadisticas service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// GetPanelAdmin implements EstadisticasHandler.
func (h *EstadisticasHandlerImpl) GetPanelAdmin(w http.ResponseWriter, r *http.Request) {
	panel, err := h.estadisticasService.GetPanelAdmin(r.Context())
	if err != nil {
		slog.Error("GetPanelAdmin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, panel)
}
