package papeleta

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/munidigital/papeletas-backend/internal/domain/papeleta"
	"github.com/munidigital/papeletas-backend/internal/pkg/validator"
)

type PapeletaServiceImpl struct {
	papeletaRepo papeleta.PapeletaRepository
}

func NewPapeletaService(papeletaRepo papeleta.PapeletaRepository) papeleta.PapeletaService {
	return &PapeletaServiceImpl{
		papeletaRepo: papeletaRepo,
	}
}

// Create implements papeleta.PapeletaService.
func (s *PapeletaServiceImpl) Create(ctx context.Context, req papeleta.CreatePapeletaRequest) (papeleta.PapeletaResponse, error) {
	if err := req.Validate(); err != nil {
		return papeleta.PapeletaResponse{}, err
	}

	exists, err := s.papeletaRepo.ExistsByCodigo(ctx, req.Codigo, nil)
	if err != nil {
		return papeleta.PapeletaResponse{}, fmt.Errorf("failed to check codigo: %w", err)
	}
	if exists {
		return papeleta.PapeletaResponse{}, papeleta.ErrCodigoExists
	}

	nueva := papeleta.Papeleta{
		ID:             uuid.NewString(),
		Codigo:         req.Codigo,
		Trabajador:     req.Trabajador,
		DNI:            req.DNI,
		Area:           req.Area,
		Cargo:          req.Cargo,
		RegimenLaboral: req.RegimenLaboral,
		OficinaVisitar: req.OficinaVisitar,
		Motivo:         req.Motivo,
		Fundamentacion: req.Fundamentacion,
		Fecha:          req.Fecha,
		HoraSalida:     req.HoraSalida,
	}
	if nueva.HoraSalida == "" {
		// Registration without an explicit departure time means "leaving now".
		nueva.HoraSalida = time.Now().Format("15:04")
	}
	if req.HoraRetorno != "" {
		retorno := req.HoraRetorno
		nueva.HoraRetorno = &retorno
	}

	creada, err := s.papeletaRepo.Create(ctx, nueva)
	if err != nil {
		return papeleta.PapeletaResponse{}, fmt.Errorf("failed to create papeleta: %w", err)
	}

	return toResponse(creada), nil
}

// List implements papeleta.PapeletaService. The repository returns the full
// snapshot (most recent first); filtering and pagination are applied here, in
// memory, matching the behaviour the HR table expects.
func (s *PapeletaServiceImpl) List(ctx context.Context, filtro papeleta.Filtro) (papeleta.ListResult, error) {
	if err := filtro.Validate(); err != nil {
		return papeleta.ListResult{}, err
	}

	snapshot, err := s.papeletaRepo.ListAll(ctx)
	if err != nil {
		return papeleta.ListResult{}, fmt.Errorf("failed to list papeletas: %w", err)
	}

	filtradas := Filtrar(snapshot, filtro)
	pagina, page := Paginar(filtradas, filtro.Page, filtro.Limit)

	respuestas := make([]papeleta.PapeletaResponse, 0, len(pagina))
	for _, p := range pagina {
		respuestas = append(respuestas, toResponse(p))
	}

	return papeleta.ListResult{
		Papeletas:  respuestas,
		TotalItems: int64(len(filtradas)),
		TotalPages: TotalPaginas(len(filtradas), filtro.Limit),
		Page:       page,
		Limit:      filtro.Limit,
	}, nil
}

// GetByID implements papeleta.PapeletaService.
func (s *PapeletaServiceImpl) GetByID(ctx context.Context, id string) (papeleta.PapeletaResponse, error) {
	if !validator.IsValidUUID(id) {
		return papeleta.PapeletaResponse{}, papeleta.ErrPapeletaNotFound
	}

	p, err := s.papeletaRepo.GetByID(ctx, id)
	if err != nil {
		return papeleta.PapeletaResponse{}, err
	}
	return toResponse(p), nil
}

// Update implements papeleta.PapeletaService.
func (s *PapeletaServiceImpl) Update(ctx context.Context, id string, req papeleta.UpdatePapeletaRequest) (papeleta.PapeletaResponse, error) {
	if err := req.Validate(); err != nil {
		return papeleta.PapeletaResponse{}, err
	}

	if !validator.IsValidUUID(id) {
		return papeleta.PapeletaResponse{}, papeleta.ErrPapeletaNotFound
	}

	existente, err := s.papeletaRepo.GetByID(ctx, id)
	if err != nil {
		return papeleta.PapeletaResponse{}, err
	}

	exists, err := s.papeletaRepo.ExistsByCodigo(ctx, req.Codigo, &id)
	if err != nil {
		return papeleta.PapeletaResponse{}, fmt.Errorf("failed to check codigo: %w", err)
	}
	if exists {
		return papeleta.PapeletaResponse{}, papeleta.ErrCodigoExists
	}

	existente.Codigo = req.Codigo
	existente.Trabajador = req.Trabajador
	existente.DNI = req.DNI
	existente.Area = req.Area
	existente.Cargo = req.Cargo
	existente.RegimenLaboral = req.RegimenLaboral
	existente.OficinaVisitar = req.OficinaVisitar
	existente.Motivo = req.Motivo
	existente.Fundamentacion = req.Fundamentacion
	existente.Fecha = req.Fecha
	if req.HoraSalida != "" {
		existente.HoraSalida = req.HoraSalida
	}
	if req.HoraRetorno != "" {
		retorno := req.HoraRetorno
		existente.HoraRetorno = &retorno
	} else {
		existente.HoraRetorno = nil
	}

	actualizada, err := s.papeletaRepo.Update(ctx, existente)
	if err != nil {
		return papeleta.PapeletaResponse{}, fmt.Errorf("failed to update papeleta: %w", err)
	}

	return toResponse(actualizada), nil
}

func toResponse(p papeleta.Papeleta) papeleta.PapeletaResponse {
	return papeleta.PapeletaResponse{
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
	}
}
