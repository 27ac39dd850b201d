package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/munidigital/papeletas-backend/internal/domain/papeleta"
	"github.com/munidigital/papeletas-backend/internal/handler/http/response"
	"github.com/munidigital/papeletas-backend/internal/pkg/normalize"
)

type PapeletaHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type PapeletaHandlerImpl struct {
	papeletaService papeleta.PapeletaService
}

func NewPapeletaHandler(papeletaService papeleta.PapeletaService) PapeletaHandler {
	return &PapeletaHandlerImpl{
		papeletaService: papeletaService,
	}
}

// filtroFromQuery builds the list filter from query parameters. The DNI
// fragment is normalized here so the filter only ever sees digits.
func filtroFromQuery(r *http.Request) papeleta.Filtro {
	q := r.URL.Query()

	filtro := papeleta.Filtro{
		DNI:         normalize.DNI(q.Get("dni")),
		FechaInicio: q.Get("fecha_inicio"),
		FechaFin:    q.Get("fecha_fin"),
		Motivo:      q.Get("motivo"),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		filtro.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		filtro.Limit = limit
	}
	return filtro
}

// Create implements PapeletaHandler.
func (h *PapeletaHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq papeleta.CreatePapeletaRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create papeleta decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	creada, err := h.papeletaService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create papeleta service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Papeleta created", "codigo", creada.Codigo)
	response.Created(w, "Papeleta created", creada)
}

// List implements PapeletaHandler.
func (h *PapeletaHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resultado, err := h.papeletaService.List(r.Context(), filtroFromQuery(r))
	if err != nil {
		slog.Error("List papeletas service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resultado.Papeletas, &response.Meta{
		Page:       resultado.Page,
		Limit:      resultado.Limit,
		TotalItems: resultado.TotalItems,
		TotalPages: resultado.TotalPages,
	})
}

// GetByID implements PapeletaHandler.
func (h *PapeletaHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.papeletaService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// Update implements PapeletaHandler.
func (h *PapeletaHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq papeleta.UpdatePapeletaRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update papeleta decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actualizada, err := h.papeletaService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Update papeleta service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Papeleta updated", "codigo", actualizada.Codigo)
	response.SuccessWithMessage(w, "Papeleta updated", actualizada)
}
