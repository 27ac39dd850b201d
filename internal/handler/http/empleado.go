package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/munidigital/papeletas-backend/internal/domain/empleado"
	"github.com/munidigital/papeletas-backend/internal/handler/http/response"
)

type EmpleadoHandler interface {
	GetByDNI(w http.ResponseWriter, r *http.Request)
}

type EmpleadoHandlerImpl struct {
	empleadoService empleado.EmpleadoService
}

func NewEmpleadoHandler(empleadoService empleado.EmpleadoService) EmpleadoHandler {
	return &EmpleadoHandlerImpl{
		empleadoService: empleadoService,
	}
}

// GetByDNI implements EmpleadoHandler.
func (h *EmpleadoHandlerImpl) GetByDNI(w http.ResponseWriter, r *http.Request) {
	dni := chi.URLParam(r, "dni")

	emp, err := h.empleadoService.GetByDNI(r.Context(), dni)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}
