package estadisticas

import (
	"context"
	"fmt"
	"time"

	"github.com/munidigital/papeletas-backend/internal/domain/estadisticas"
	"github.com/munidigital/papeletas-backend/internal/domain/papeleta"
	"github.com/munidigital/papeletas-backend/internal/domain/usuario"
	"github.com/munidigital/papeletas-backend/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type EstadisticasServiceImpl struct {
	papeletaRepo papeleta.PapeletaRepository
	usuarioRepo  usuario.UsuarioRepository
}

func NewEstadisticasService(papeletaRepo papeleta.PapeletaRepository, usuarioRepo usuario.UsuarioRepository) estadisticas.EstadisticasService {
	return &EstadisticasServiceImpl{
		papeletaRepo: papeletaRepo,
		usuarioRepo:  usuarioRepo,
	}
}

// GetEstadisticas implements estadisticas.EstadisticasService. The repository
// supplies an immutable snapshot; every view is recomputed from scratch over
// it, which is fine for the volumes this system sees.
func (s *EstadisticasServiceImpl) GetEstadisticas(ctx context.Context, mes string) (*estadisticas.Estadisticas, error) {
	if mes != "" {
		if _, ok := validator.IsValidMes(mes); !ok {
			return nil, validator.ValidationErrors{{
				Field:   "mes",
				Message: "mes must be in YYYY-MM format",
			}}
		}
	}

	snapshot, err := s.papeletaRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load papeletas: %w", err)
	}

	if mes != "" {
		snapshot = FiltrarPorMes(snapshot, mes)
	}

	return Calcular(snapshot, time.Now()), nil
}

// GetPanelAdmin implements estadisticas.EstadisticasService. The counters are
// independent queries, fetched in parallel.
func (s *EstadisticasServiceImpl) GetPanelAdmin(ctx context.Context) (*estadisticas.PanelAdmin, error) {
	var (
		totalUsuarios  int64
		porRol         map[string]int64
		totalPapeletas int64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		porRol, err = s.usuarioRepo.CountByRol(gCtx)
		if err != nil {
			return err
		}
		for _, n := range porRol {
			totalUsuarios += n
		}
		return nil
	})

	g.Go(func() error {
		var err error
		totalPapeletas, err = s.papeletaRepo.CountAll(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &estadisticas.PanelAdmin{
		TotalUsuarios:  totalUsuarios,
		PorRol:         porRol,
		TotalPapeletas: totalPapeletas,
	}, nil
}
