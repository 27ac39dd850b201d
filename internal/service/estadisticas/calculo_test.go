package estadisticas

import (
	"testing"
	"time"

	"github.com/munidigital/papeletas-backend/internal/domain/papeleta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

// Monday 2025-03-10 at noon; the business week is 2025-03-10..2025-03-14.
var lunes = time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)

func TestCalcular_SnapshotVacio(t *testing.T) {
	stats := Calcular(nil, lunes)

	assert.Equal(t, 0, stats.TotalPapeletas)
	assert.Equal(t, 0, stats.PapeletasHoy)
	assert.Equal(t, "N/A", stats.AreaMasSolicitada)
	assert.Equal(t, 0, stats.PapeletasSinRetorno)
	assert.NotNil(t, stats.PorArea)
	assert.Empty(t, stats.PorArea)
	assert.Empty(t, stats.PorMotivo)
	assert.Empty(t, stats.PorDia)
	assert.Empty(t, stats.PorDiaLaboral)
	assert.Empty(t, stats.TopEmpleados)
	assert.Empty(t, stats.DuracionPromedio)
	assert.Equal(t, 0, stats.RetornoStats.ConRetorno)
	assert.Equal(t, 0, stats.RetornoStats.SinRetorno)
}

func TestCalcular_TotalesYHoy(t *testing.T) {
	papeletas := []papeleta.Papeleta{
		{Fecha: "2025-03-10"},
		{Fecha: "2025-03-10", HoraRetorno: ptr("11:00")},
		{Fecha: "2025-03-09"},
	}

	stats := Calcular(papeletas, lunes)

	assert.Equal(t, 3, stats.TotalPapeletas)
	assert.Equal(t, 2, stats.PapeletasHoy)
	assert.Equal(t, 1, stats.RetornoStats.ConRetorno)
	assert.Equal(t, 2, stats.RetornoStats.SinRetorno)
	assert.Equal(t, 2, stats.PapeletasSinRetorno)
}

func TestCalcular_PorArea(t *testing.T) {
	papeletas := []papeleta.Papeleta{
		{Area: "Alcaldía", Fecha: "2025-03-10"},
		{Area: "Tesorería", Fecha: "2025-03-10"},
		{Area: "Tesorería", Fecha: "2025-03-10"},
		{Area: "", Fecha: "2025-03-10"},
	}

	stats := Calcular(papeletas, lunes)

	require.Len(t, stats.PorArea, 3)
	assert.Equal(t, "Tesorería", stats.PorArea[0].Area)
	assert.Equal(t, 2, stats.PorArea[0].Cantidad)
	assert.Equal(t, "Tesorería", stats.AreaMasSolicitada)

	// Sum of per-area counts equals total
	suma := 0
	for _, c := range stats.PorArea {
		suma += c.Cantidad
	}
	assert.Equal(t, stats.TotalPapeletas, suma)

	// Missing area falls into "Sin área"
	areas := []string{stats.PorArea[0].Area, stats.PorArea[1].Area, stats.PorArea[2].Area}
	assert.Contains(t, areas, "Sin área")
}

func TestCalcular_PorArea_EmpateOrdenEstable(t *testing.T) {
	papeletas := []papeleta.Papeleta{
		{Area: "B", Fecha: "2025-03-10"},
		{Area: "A", Fecha: "2025-03-10"},
	}

	stats := Calcular(papeletas, lunes)

	// Tie broken by input encounter order, not alphabetically
	require.Len(t, stats.PorArea, 2)
	assert.Equal(t, "B", stats.PorArea[0].Area)
	assert.Equal(t, "A", stats.PorArea[1].Area)
}

func TestCalcular_PorMotivo(t *testing.T) {
	papeletas := []papeleta.Papeleta{
		{Motivo: "Capacitación", Fecha: "2025-03-10"},
		{Motivo: "", Fecha: "2025-03-10"},
		{Motivo: "Capacitación", Fecha: "2025-03-10"},
	}

	stats := Calcular(papeletas, lunes)

	require.Len(t, stats.PorMotivo, 2)
	assert.Equal(t, "Capacitación", stats.PorMotivo[0].Motivo)
	assert.Equal(t, 2, stats.PorMotivo[0].Cantidad)
	assert.Equal(t, "Sin especificar", stats.PorMotivo[1].Motivo)

	suma := 0
	for _, c := range stats.PorMotivo {
		suma += c.Cantidad
	}
	assert.Equal(t, stats.TotalPapeletas, suma)
}

func TestCalcular_Ultimos7Dias(t *testing.T) {
	papeletas := []papeleta.Papeleta{
		{Fecha: "2025-03-10"}, // today
		{Fecha: "2025-03-04"}, // 6 days ago, first entry
		{Fecha: "2025-03-03"}, // 7 days ago, outside the window
	}

	stats := Calcular(papeletas, lunes)

	require.Len(t, stats.PorDia, 7)
	assert.Equal(t, 1, stats.PorDia[0].Cantidad) // 2025-03-04
	assert.Equal(t, 1, stats.PorDia[6].Cantidad) // today
	assert.Equal(t, "mar, 4 mar", stats.PorDia[0].Fecha)
	assert.Equal(t, "lun, 10 mar", stats.PorDia[6].Fecha)

	total := 0
	for _, d := range stats.PorDia {
		total += d.Cantidad
	}
	assert.Equal(t, 2, total)
}

func TestCalcular_SemanaLaboral_CincoEntradas(t *testing.T) {
	papeletas := []papeleta.Papeleta{
		{Fecha: "2025-03-10"}, // Monday
		{Fecha: "2025-03-14"}, // Friday
		{Fecha: "2025-03-15"}, // Saturday, never counted
	}

	// Whatever weekday "today" is, the view is exactly Mon..Fri
	for delta := 0; delta < 7; delta++ {
		ahora := lunes.AddDate(0, 0, delta)
		stats := Calcular(papeletas, ahora)
		require.Len(t, stats.PorDiaLaboral, 5, "ahora=%s", ahora.Format("2006-01-02"))
	}

	stats := Calcular(papeletas, lunes)
	assert.Equal(t, "Lunes 10 mar", stats.PorDiaLaboral[0].Fecha)
	assert.Equal(t, "Viernes 14 mar", stats.PorDiaLaboral[4].Fecha)
	assert.Equal(t, 1, stats.PorDiaLaboral[0].Cantidad)
	assert.Equal(t, 1, stats.PorDiaLaboral[4].Cantidad)
	for i := 1; i < 4; i++ {
		assert.Equal(t, 0, stats.PorDiaLaboral[i].Cantidad)
	}
}

func TestCalcular_SemanaLaboral_DomingoAvanzaAlLunes(t *testing.T) {
	// Sunday 2025-03-09: the business week is the upcoming 03-10..03-14
	domingo := time.Date(2025, 3, 9, 12, 0, 0, 0, time.Local)
	papeletas := []papeleta.Papeleta{
		{Fecha: "2025-03-10"},
		{Fecha: "2025-03-07"}, // previous Friday, not in the upcoming week
	}

	stats := Calcular(papeletas, domingo)

	require.Len(t, stats.PorDiaLaboral, 5)
	assert.Equal(t, "Lunes 10 mar", stats.PorDiaLaboral[0].Fecha)
	assert.Equal(t, 1, stats.PorDiaLaboral[0].Cantidad)
	assert.Equal(t, 0, stats.PorDiaLaboral[4].Cantidad)
}

func TestCalcular_TopEmpleados(t *testing.T) {
	papeletas := []papeleta.Papeleta{
		{Trabajador: "Ana", Fecha: "2025-03-10"},
		{Trabajador: "Ana", Fecha: "2025-03-10"},
		{Trabajador: "Luis", Fecha: "2025-03-10"},
		{Trabajador: "", Fecha: "2025-03-10"},
	}

	stats := Calcular(papeletas, lunes)

	require.Len(t, stats.TopEmpleados, 3)
	assert.Equal(t, "Ana", stats.TopEmpleados[0].Empleado)
	assert.Equal(t, 2, stats.TopEmpleados[0].Cantidad)
	assert.Equal(t, "Sin nombre", stats.TopEmpleados[2].Empleado)
}

func TestCalcular_TopEmpleados_TruncaADiez(t *testing.T) {
	var papeletas []papeleta.Papeleta
	nombres := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for _, n := range nombres {
		papeletas = append(papeletas, papeleta.Papeleta{Trabajador: n, Fecha: "2025-03-10"})
	}

	stats := Calcular(papeletas, lunes)

	assert.Len(t, stats.TopEmpleados, 10)
}

func TestCalcular_DuracionPromedio(t *testing.T) {
	papeletas := []papeleta.Papeleta{
		{Area: "A", HoraSalida: "08:00", HoraRetorno: ptr("10:00"), Fecha: "2025-03-10"}, // 120
		{Area: "A", HoraSalida: "09:00", HoraRetorno: ptr("09:30"), Fecha: "2025-03-10"}, // 30
	}

	stats := Calcular(papeletas, lunes)

	require.Len(t, stats.DuracionPromedio, 1)
	assert.Equal(t, "A", stats.DuracionPromedio[0].Area)
	assert.Equal(t, 75, stats.DuracionPromedio[0].DuracionPromedio) // round((120+30)/2)
}

func TestCalcular_DuracionPromedio_DescartaNoPositivas(t *testing.T) {
	papeletas := []papeleta.Papeleta{
		// Negative span contributes to neither numerator nor denominator
		{Area: "A", HoraSalida: "17:00", HoraRetorno: ptr("09:00"), Fecha: "2025-03-10"},
		{Area: "A", HoraSalida: "08:00", HoraRetorno: ptr("09:00"), Fecha: "2025-03-10"}, // 60
	}

	stats := Calcular(papeletas, lunes)

	require.Len(t, stats.DuracionPromedio, 1)
	assert.Equal(t, 60, stats.DuracionPromedio[0].DuracionPromedio)
}

func TestCalcular_DuracionPromedio_OmiteAreasSinContribuyentes(t *testing.T) {
	papeletas := []papeleta.Papeleta{
		{Area: "A", HoraSalida: "17:00", HoraRetorno: ptr("09:00"), Fecha: "2025-03-10"},
		{Area: "B", HoraSalida: "08:00", Fecha: "2025-03-10"}, // sin retorno
		{Area: "C", HoraSalida: "xx:yy", HoraRetorno: ptr("10:00"), Fecha: "2025-03-10"},
	}

	stats := Calcular(papeletas, lunes)

	assert.Empty(t, stats.DuracionPromedio)
}

func TestFiltrarPorMes(t *testing.T) {
	papeletas := []papeleta.Papeleta{
		{ID: "1", Fecha: "2025-03-10"},
		{ID: "2", Fecha: "2025-04-01"},
		{ID: "3", Fecha: "2025-03-31"},
	}

	got := FiltrarPorMes(papeletas, "2025-03")

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestMinutosDeHora(t *testing.T) {
	m, err := minutosDeHora("08:30")
	require.NoError(t, err)
	assert.Equal(t, 510, m)

	_, err = minutosDeHora("25:00")
	assert.Error(t, err)

	_, err = minutosDeHora("abc")
	assert.Error(t, err)
}
