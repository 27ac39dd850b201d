package reporte

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munidigital/papeletas-backend/internal/domain/papeleta"
)

type stubRepo struct {
	papeletas []papeleta.Papeleta
}

func (s *stubRepo) ListAll(ctx context.Context) ([]papeleta.Papeleta, error) {
	return s.papeletas, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (papeleta.Papeleta, error) {
	return papeleta.Papeleta{}, papeleta.ErrPapeletaNotFound
}

func (s *stubRepo) ExistsByCodigo(ctx context.Context, codigo string, excludeID *string) (bool, error) {
	return false, nil
}

func (s *stubRepo) Create(ctx context.Context, nueva papeleta.Papeleta) (papeleta.Papeleta, error) {
	return nueva, nil
}

func (s *stubRepo) Update(ctx context.Context, actualizada papeleta.Papeleta) (papeleta.Papeleta, error) {
	return actualizada, nil
}

func (s *stubRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(s.papeletas)), nil
}

func (s *stubRepo) CountSinRetornoHoy(ctx context.Context, fecha string) (int64, error) {
	return 0, nil
}

func TestGenerarSinFiltros(t *testing.T) {
	repo := &stubRepo{papeletas: []papeleta.Papeleta{
		{ID: "1", Codigo: "P-001", DNI: "45678912", Fecha: "2025-03-10", Motivo: "Comisión de servicio"},
		{ID: "2", Codigo: "P-002", DNI: "11223344", Fecha: "2025-03-11", Motivo: "Salud"},
	}}
	svc := NewReporteService(repo)

	rep, err := svc.Generar(context.Background(), papeleta.Filtro{})
	require.NoError(t, err)

	assert.Equal(t, "Ninguno", rep.FiltrosAplicados)
	assert.Equal(t, 2, rep.TotalRegistros)
	assert.Len(t, rep.Papeletas, 2)
	assert.NotEmpty(t, rep.GeneradoEn)
}

func TestGenerarConFiltros(t *testing.T) {
	repo := &stubRepo{papeletas: []papeleta.Papeleta{
		{ID: "1", Codigo: "P-001", DNI: "45678912", Fecha: "2025-03-10", Motivo: "Salud"},
		{ID: "2", Codigo: "P-002", DNI: "11223344", Fecha: "2025-03-11", Motivo: "Salud"},
		{ID: "3", Codigo: "P-003", DNI: "45600000", Fecha: "2025-03-12", Motivo: "Particular"},
	}}
	svc := NewReporteService(repo)

	rep, err := svc.Generar(context.Background(), papeleta.Filtro{DNI: "456", Motivo: "Salud"})
	require.NoError(t, err)

	assert.Equal(t, 1, rep.TotalRegistros)
	assert.Equal(t, "P-001", rep.Papeletas[0].Codigo)
	assert.Equal(t, "DNI: 456 | Motivo: Salud", rep.FiltrosAplicados)
}

func TestResumenFiltrosOrden(t *testing.T) {
	resumen := ResumenFiltros(papeleta.Filtro{
		DNI:         "123",
		FechaInicio: "2025-01-01",
		FechaFin:    "2025-01-31",
		Motivo:      "Particular",
	})
	assert.Equal(t, "DNI: 123 | Desde: 2025-01-01 | Hasta: 2025-01-31 | Motivo: Particular", resumen)
}
