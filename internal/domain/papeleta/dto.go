package papeleta

import (
	"github.com/munidigital/papeletas-backend/internal/fixtures"
	"github.com/munidigital/papeletas-backend/internal/pkg/normalize"
	"github.com/munidigital/papeletas-backend/internal/pkg/validator"
)

// ========================================
// PAPELETA DTOs
// ========================================

type CreatePapeletaRequest struct {
	Codigo         string `json:"codigo"`
	Trabajador     string `json:"trabajador"`
	DNI            string `json:"dni"`
	Area           string `json:"area"`
	Cargo          string `json:"cargo"`
	RegimenLaboral string `json:"regimen_laboral"`
	OficinaVisitar string `json:"oficina_visitar"`
	Motivo         string `json:"motivo"`
	Fundamentacion string `json:"fundamentacion"`
	Fecha          string `json:"fecha"`        // YYYY-MM-DD
	HoraSalida     string `json:"hora_salida"`  // HH:mm; empty = now
	HoraRetorno    string `json:"hora_retorno"` // HH:mm or empty = sin retorno
}

func (r *CreatePapeletaRequest) Validate() error {
	var errs validator.ValidationErrors

	r.DNI = normalize.DNI(r.DNI)

	if validator.IsEmpty(r.Codigo) {
		errs = append(errs, validator.ValidationError{
			Field:   "codigo",
			Message: "codigo is required",
		})
	} else if len(r.Codigo) < 3 {
		errs = append(errs, validator.ValidationError{
			Field:   "codigo",
			Message: "codigo must be at least 3 characters",
		})
	}

	if validator.IsEmpty(r.Trabajador) {
		errs = append(errs, validator.ValidationError{
			Field:   "trabajador",
			Message: "trabajador is required",
		})
	} else if len(r.Trabajador) < 3 {
		errs = append(errs, validator.ValidationError{
			Field:   "trabajador",
			Message: "trabajador must be at least 3 characters",
		})
	}

	if !validator.IsValidDNI(r.DNI) {
		errs = append(errs, validator.ValidationError{
			Field:   "dni",
			Message: "dni must be exactly 8 digits",
		})
	}

	if validator.IsEmpty(r.Area) {
		errs = append(errs, validator.ValidationError{
			Field:   "area",
			Message: "area is required",
		})
	}

	if validator.IsEmpty(r.Fecha) {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha",
			Message: "fecha is required",
		})
	} else if _, ok := validator.IsValidDate(r.Fecha); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha",
			Message: "fecha must be in YYYY-MM-DD format",
		})
	}

	if r.HoraSalida != "" && !validator.IsValidHora(r.HoraSalida) {
		errs = append(errs, validator.ValidationError{
			Field:   "hora_salida",
			Message: "hora_salida must be in HH:mm format",
		})
	}

	if r.HoraRetorno != "" && !validator.IsValidHora(r.HoraRetorno) {
		errs = append(errs, validator.ValidationError{
			Field:   "hora_retorno",
			Message: "hora_retorno must be in HH:mm format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdatePapeletaRequest replaces every editable field of an existing slip.
type UpdatePapeletaRequest struct {
	Codigo         string `json:"codigo"`
	Trabajador     string `json:"trabajador"`
	DNI            string `json:"dni"`
	Area           string `json:"area"`
	Cargo          string `json:"cargo"`
	RegimenLaboral string `json:"regimen_laboral"`
	OficinaVisitar string `json:"oficina_visitar"`
	Motivo         string `json:"motivo"`
	Fundamentacion string `json:"fundamentacion"`
	Fecha          string `json:"fecha"`
	HoraSalida     string `json:"hora_salida"`
	HoraRetorno    string `json:"hora_retorno"`
}

func (r *UpdatePapeletaRequest) Validate() error {
	req := CreatePapeletaRequest{
		Codigo:      r.Codigo,
		Trabajador:  r.Trabajador,
		DNI:         r.DNI,
		Area:        r.Area,
		Fecha:       r.Fecha,
		HoraSalida:  r.HoraSalida,
		HoraRetorno: r.HoraRetorno,
	}
	err := req.Validate()
	r.DNI = req.DNI
	return err
}

type PapeletaResponse struct {
	ID             string  `json:"id"`
	Codigo         string  `json:"codigo"`
	Trabajador     string  `json:"trabajador"`
	DNI            string  `json:"dni"`
	Area           string  `json:"area"`
	Cargo          string  `json:"cargo"`
	RegimenLaboral string  `json:"regimen_laboral"`
	OficinaVisitar string  `json:"oficina_visitar"`
	Motivo         string  `json:"motivo"`
	Fundamentacion string  `json:"fundamentacion"`
	Fecha          string  `json:"fecha"`
	HoraSalida     string  `json:"hora_salida"`
	HoraRetorno    *string `json:"hora_retorno,omitempty"`
	FechaCreacion  string  `json:"fecha_creacion"`
}

// Filtro is the set of constraints applied over the in-memory snapshot.
// Absent/empty fields mean "no constraint"; all supplied constraints are
// ANDed.
type Filtro struct {
	DNI         string `json:"dni"`          // substring match, not anchored
	FechaInicio string `json:"fecha_inicio"` // inclusive YYYY-MM-DD lower bound
	FechaFin    string `json:"fecha_fin"`    // inclusive YYYY-MM-DD upper bound
	Motivo      string `json:"motivo"`       // exact match

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *Filtro) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = fixtures.ElementosPorPagina
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.FechaInicio != "" {
		if _, ok := validator.IsValidDate(f.FechaInicio); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "fecha_inicio",
				Message: "fecha_inicio must be in YYYY-MM-DD format",
			})
		}
	}

	if f.FechaFin != "" {
		if _, ok := validator.IsValidDate(f.FechaFin); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "fecha_fin",
				Message: "fecha_fin must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
