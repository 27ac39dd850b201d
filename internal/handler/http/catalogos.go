package http

import (
	"net/http"

	"github.com/munidigital/papeletas-backend/internal/fixtures"
	"github.com/munidigital/papeletas-backend/internal/handler/http/response"
)

type CatalogosHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type CatalogosHandlerImpl struct{}

func NewCatalogosHandler() CatalogosHandler {
	return &CatalogosHandlerImpl{}
}

// Get implements CatalogosHandler. The catalogs feed the form selectors and
// are compiled in; there is no admin surface to edit them.
func (h *CatalogosHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]interface{}{
		"motivos":              fixtures.MotivosPapeleta,
		"areas":                fixtures.Areas,
		"regimenes_laborales":  fixtures.RegimenesLaborales,
		"elementos_por_pagina": fixtures.ElementosPorPaginaOpciones,
	})
}
