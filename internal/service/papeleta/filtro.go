package papeleta

import (
	"strings"

	"github.com/munidigital/papeletas-backend/internal/domain/papeleta"
)

// Filtrar applies every supplied constraint of the filter over the snapshot
// and returns the matching subset, preserving input order. Dates are compared
// as canonical YYYY-MM-DD strings, which is exact calendar-date comparison
// and immune to timezone shifts. An inverted range (inicio > fin) simply
// yields no matches.
func Filtrar(papeletas []papeleta.Papeleta, f papeleta.Filtro) []papeleta.Papeleta {
	resultado := make([]papeleta.Papeleta, 0, len(papeletas))

	for _, p := range papeletas {
		if f.DNI != "" && !strings.Contains(p.DNI, f.DNI) {
			continue
		}
		if f.FechaInicio != "" && p.Fecha < f.FechaInicio {
			continue
		}
		if f.FechaFin != "" && p.Fecha > f.FechaFin {
			continue
		}
		if f.Motivo != "" && p.Motivo != f.Motivo {
			continue
		}
		resultado = append(resultado, p)
	}

	return resultado
}

// TotalPaginas computes ceil(total/limit), never less than 1.
func TotalPaginas(total, limit int) int {
	if limit <= 0 {
		return 1
	}
	paginas := (total + limit - 1) / limit
	if paginas < 1 {
		return 1
	}
	return paginas
}

// Paginar returns the requested 1-based page of the filtered set. Out-of-range
// pages are clamped to [1, totalPages] rather than rejected.
func Paginar(papeletas []papeleta.Papeleta, page, limit int) ([]papeleta.Papeleta, int) {
	totalPaginas := TotalPaginas(len(papeletas), limit)

	if page < 1 {
		page = 1
	}
	if page > totalPaginas {
		page = totalPaginas
	}

	inicio := (page - 1) * limit
	if inicio >= len(papeletas) {
		return []papeleta.Papeleta{}, page
	}
	fin := inicio + limit
	if fin > len(papeletas) {
		fin = len(papeletas)
	}

	return papeletas[inicio:fin], page
}
