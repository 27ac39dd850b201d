package papeleta

import (
	"context"
	"testing"
	"time"

	"github.com/munidigital/papeletas-backend/internal/domain/papeleta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepo is an in-memory PapeletaRepository for service tests.
type stubRepo struct {
	papeletas []papeleta.Papeleta
}

func (r *stubRepo) ListAll(ctx context.Context) ([]papeleta.Papeleta, error) {
	return r.papeletas, nil
}

func (r *stubRepo) GetByID(ctx context.Context, id string) (papeleta.Papeleta, error) {
	for _, p := range r.papeletas {
		if p.ID == id {
			return p, nil
		}
	}
	return papeleta.Papeleta{}, papeleta.ErrPapeletaNotFound
}

func (r *stubRepo) ExistsByCodigo(ctx context.Context, codigo string, excludeID *string) (bool, error) {
	for _, p := range r.papeletas {
		if excludeID != nil && p.ID == *excludeID {
			continue
		}
		if p.Codigo == codigo {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubRepo) Create(ctx context.Context, nueva papeleta.Papeleta) (papeleta.Papeleta, error) {
	nueva.FechaCreacion = time.Now()
	r.papeletas = append([]papeleta.Papeleta{nueva}, r.papeletas...)
	return nueva, nil
}

func (r *stubRepo) Update(ctx context.Context, actualizada papeleta.Papeleta) (papeleta.Papeleta, error) {
	for i, p := range r.papeletas {
		if p.ID == actualizada.ID {
			r.papeletas[i] = actualizada
			return actualizada, nil
		}
	}
	return papeleta.Papeleta{}, papeleta.ErrPapeletaNotFound
}

func (r *stubRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.papeletas)), nil
}

func (r *stubRepo) CountSinRetornoHoy(ctx context.Context, fecha string) (int64, error) {
	var n int64
	for _, p := range r.papeletas {
		if p.Fecha == fecha && !p.TieneRetorno() {
			n++
		}
	}
	return n, nil
}

func validCreateRequest() papeleta.CreatePapeletaRequest {
	return papeleta.CreatePapeletaRequest{
		Codigo:     "P-100",
		Trabajador: "Juan Pérez",
		DNI:        "12345678",
		Area:       "Oficina de Tesorería",
		Motivo:     "Atención médica",
		Fecha:      "2025-03-10",
		HoraSalida: "09:00",
	}
}

func TestPapeletaService_Create_Success(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{}
	svc := NewPapeletaService(repo)

	resp, err := svc.Create(ctx, validCreateRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "P-100", resp.Codigo)
	assert.Nil(t, resp.HoraRetorno)
	assert.Len(t, repo.papeletas, 1)
}

func TestPapeletaService_Create_CodigoDuplicado(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{papeletas: []papeleta.Papeleta{{ID: "x", Codigo: "P-100"}}}
	svc := NewPapeletaService(repo)

	_, err := svc.Create(ctx, validCreateRequest())

	assert.ErrorIs(t, err, papeleta.ErrCodigoExists)
}

func TestPapeletaService_Create_DNINormalizado(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{}
	svc := NewPapeletaService(repo)

	req := validCreateRequest()
	req.DNI = "12a34-56b789"
	resp, err := svc.Create(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "12345678", resp.DNI)
}

func TestPapeletaService_Create_Invalido(t *testing.T) {
	ctx := context.Background()
	svc := NewPapeletaService(&stubRepo{})

	req := validCreateRequest()
	req.Fecha = "10/03/2025"
	_, err := svc.Create(ctx, req)

	assert.Error(t, err)
}

func TestPapeletaService_List_FiltraYPagina(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{}
	for _, p := range []papeleta.Papeleta{
		{ID: "1", Codigo: "A", DNI: "12345678", Fecha: "2025-03-10", Motivo: "Capacitación"},
		{ID: "2", Codigo: "B", DNI: "12399999", Fecha: "2025-03-11", Motivo: "Capacitación"},
		{ID: "3", Codigo: "C", DNI: "87654321", Fecha: "2025-03-12", Motivo: "Atención médica"},
	} {
		repo.papeletas = append(repo.papeletas, p)
	}
	svc := NewPapeletaService(repo)

	result, err := svc.List(ctx, papeleta.Filtro{DNI: "123", Page: 1, Limit: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(2), result.TotalItems)
	assert.Equal(t, 2, result.TotalPages)
	assert.Len(t, result.Papeletas, 1)
	assert.Equal(t, "1", result.Papeletas[0].ID)
}

func TestPapeletaService_List_PaginaFueraDeRango(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{papeletas: []papeleta.Papeleta{{ID: "1", Codigo: "A", Fecha: "2025-03-10"}}}
	svc := NewPapeletaService(repo)

	result, err := svc.List(ctx, papeleta.Filtro{Page: 50, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 1, result.TotalPages)
	assert.Len(t, result.Papeletas, 1)
}

func TestPapeletaService_Update_QuitaRetorno(t *testing.T) {
	ctx := context.Background()
	id := "6a1f0b2e-1c2d-4e5f-8a9b-0c1d2e3f4a5b"
	retorno := "12:00"
	repo := &stubRepo{papeletas: []papeleta.Papeleta{{
		ID: id, Codigo: "P-100", Trabajador: "Juan Pérez", DNI: "12345678",
		Area: "Alcaldía", Fecha: "2025-03-10", HoraSalida: "09:00", HoraRetorno: &retorno,
	}}}
	svc := NewPapeletaService(repo)

	resp, err := svc.Update(ctx, id, papeleta.UpdatePapeletaRequest{
		Codigo: "P-100", Trabajador: "Juan Pérez", DNI: "12345678",
		Area: "Alcaldía", Fecha: "2025-03-10", HoraSalida: "09:00",
	})

	require.NoError(t, err)
	assert.Nil(t, resp.HoraRetorno)
}

func TestPapeletaService_Update_NoEncontrada(t *testing.T) {
	ctx := context.Background()
	svc := NewPapeletaService(&stubRepo{})

	_, err := svc.Update(ctx, "nope", papeleta.UpdatePapeletaRequest{
		Codigo: "P-100", Trabajador: "Juan Pérez", DNI: "12345678",
		Area: "Alcaldía", Fecha: "2025-03-10",
	})

	assert.ErrorIs(t, err, papeleta.ErrPapeletaNotFound)
}
