package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/munidigital/papeletas-backend/internal/domain/usuario"
	"github.com/munidigital/papeletas-backend/internal/handler/http/response"
)

type UsuarioHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type UsuarioHandlerImpl struct {
	usuarioService usuario.UsuarioService
}

func NewUsuarioHandler(usuarioService usuario.UsuarioService) UsuarioHandler {
	return &UsuarioHandlerImpl{
		usuarioService: usuarioService,
	}
}

// Create implements UsuarioHandler.
func (h *UsuarioHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq usuario.CreateUsuarioRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create usuario decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	creado, err := h.usuarioService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create usuario service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Usuario created", "usuario", creado.Usuario, "rol", creado.Rol)
	response.Created(w, "Usuario created", creado)
}

// List implements UsuarioHandler.
func (h *UsuarioHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.usuarioService.List(r.Context())
	if err != nil {
		slog.Error("List usuarios service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, usuarios)
}

// Update implements UsuarioHandler.
func (h *UsuarioHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq usuario.UpdateUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update usuario decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actualizado, err := h.usuarioService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Update usuario service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Usuario updated", actualizado)
}

// Delete implements UsuarioHandler.
func (h *UsuarioHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.usuarioService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete usuario service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Usuario deleted", nil)
}
