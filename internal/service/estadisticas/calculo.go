package estadisticas

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/munidigital/papeletas-backend/internal/domain/estadisticas"
	"github.com/munidigital/papeletas-backend/internal/domain/papeleta"
)

const (
	sinArea        = "Sin área"
	sinEspecificar = "Sin especificar"
	sinNombre      = "Sin nombre"
)

var diasCortos = [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}

var diasLaborables = [5]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes"}

var mesesCortos = [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

// Calcular derives every statistics view from the snapshot. It is a pure
// function: ahora is injected so the "today"-relative views are
// deterministic, and the snapshot is never mutated.
func Calcular(papeletas []papeleta.Papeleta, ahora time.Time) *estadisticas.Estadisticas {
	if len(papeletas) == 0 {
		return &estadisticas.Estadisticas{
			AreaMasSolicitada: "N/A",
			PorArea:           []estadisticas.ConteoArea{},
			PorMotivo:         []estadisticas.ConteoMotivo{},
			PorDia:            []estadisticas.ConteoDia{},
			PorDiaLaboral:     []estadisticas.ConteoDia{},
			TopEmpleados:      []estadisticas.ConteoEmpleado{},
			DuracionPromedio:  []estadisticas.DuracionArea{},
		}
	}

	hoy := ahora.Format("2006-01-02")

	total := len(papeletas)
	papeletasHoy := 0
	conRetorno := 0
	for _, p := range papeletas {
		if p.Fecha == hoy {
			papeletasHoy++
		}
		if p.TieneRetorno() {
			conRetorno++
		}
	}

	porArea := contarPorArea(papeletas)
	areaMasSolicitada := "N/A"
	if len(porArea) > 0 {
		areaMasSolicitada = porArea[0].Area
	}

	return &estadisticas.Estadisticas{
		TotalPapeletas:      total,
		PapeletasHoy:        papeletasHoy,
		AreaMasSolicitada:   areaMasSolicitada,
		PapeletasSinRetorno: total - conRetorno,
		PorArea:             porArea,
		PorMotivo:           contarPorMotivo(papeletas),
		PorDia:              contarUltimos7Dias(papeletas, ahora),
		PorDiaLaboral:       contarSemanaLaboral(papeletas, ahora),
		RetornoStats: estadisticas.RetornoStats{
			ConRetorno: conRetorno,
			SinRetorno: total - conRetorno,
		},
		TopEmpleados:     topEmpleados(papeletas),
		DuracionPromedio: duracionPromedioPorArea(papeletas, porArea),
	}
}

// FiltrarPorMes keeps only the slips whose fecha falls inside the YYYY-MM
// month. Month selection pre-filters the snapshot before aggregation.
func FiltrarPorMes(papeletas []papeleta.Papeleta, mes string) []papeleta.Papeleta {
	resultado := make([]papeleta.Papeleta, 0, len(papeletas))
	for _, p := range papeletas {
		if strings.HasPrefix(p.Fecha, mes+"-") {
			resultado = append(resultado, p)
		}
	}
	return resultado
}

// contarPorArea groups by area, descending by count. The sort is stable so
// ties keep first-encounter order.
func contarPorArea(papeletas []papeleta.Papeleta) []estadisticas.ConteoArea {
	conteo := make(map[string]int)
	orden := make([]string, 0)
	for _, p := range papeletas {
		area := p.Area
		if area == "" {
			area = sinArea
		}
		if _, visto := conteo[area]; !visto {
			orden = append(orden, area)
		}
		conteo[area]++
	}

	resultado := make([]estadisticas.ConteoArea, 0, len(orden))
	for _, area := range orden {
		resultado = append(resultado, estadisticas.ConteoArea{Area: area, Cantidad: conteo[area]})
	}
	sort.SliceStable(resultado, func(i, j int) bool {
		return resultado[i].Cantidad > resultado[j].Cantidad
	})
	return resultado
}

func contarPorMotivo(papeletas []papeleta.Papeleta) []estadisticas.ConteoMotivo {
	conteo := make(map[string]int)
	orden := make([]string, 0)
	for _, p := range papeletas {
		motivo := p.Motivo
		if motivo == "" {
			motivo = sinEspecificar
		}
		if _, visto := conteo[motivo]; !visto {
			orden = append(orden, motivo)
		}
		conteo[motivo]++
	}

	resultado := make([]estadisticas.ConteoMotivo, 0, len(orden))
	for _, motivo := range orden {
		resultado = append(resultado, estadisticas.ConteoMotivo{Motivo: motivo, Cantidad: conteo[motivo]})
	}
	sort.SliceStable(resultado, func(i, j int) bool {
		return resultado[i].Cantidad > resultado[j].Cantidad
	})
	return resultado
}

// contarUltimos7Dias counts slips for each of the 7 consecutive calendar
// dates ending today, labeled "lun, 25 ago".
func contarUltimos7Dias(papeletas []papeleta.Papeleta, ahora time.Time) []estadisticas.ConteoDia {
	porFecha := make(map[string]int)
	for _, p := range papeletas {
		porFecha[p.Fecha]++
	}

	resultado := make([]estadisticas.ConteoDia, 0, 7)
	for i := 6; i >= 0; i-- {
		dia := ahora.AddDate(0, 0, -i)
		etiqueta := fmt.Sprintf("%s, %d %s",
			diasCortos[int(dia.Weekday())], dia.Day(), mesesCortos[int(dia.Month())-1])
		resultado = append(resultado, estadisticas.ConteoDia{
			Fecha:    etiqueta,
			Cantidad: porFecha[dia.Format("2006-01-02")],
		})
	}
	return resultado
}

// contarSemanaLaboral counts slips for Monday..Friday of the business week
// containing today. On Sunday the week rolls forward to the upcoming Monday;
// weekends never appear as entries.
func contarSemanaLaboral(papeletas []papeleta.Papeleta, ahora time.Time) []estadisticas.ConteoDia {
	porFecha := make(map[string]int)
	for _, p := range papeletas {
		porFecha[p.Fecha]++
	}

	diaSemana := int(ahora.Weekday()) // 0=domingo
	diasHastaLunes := diaSemana - 1
	if diaSemana == 0 {
		diasHastaLunes = -1
	}
	lunes := ahora.AddDate(0, 0, -diasHastaLunes)

	resultado := make([]estadisticas.ConteoDia, 0, 5)
	for i := 0; i < 5; i++ {
		dia := lunes.AddDate(0, 0, i)
		etiqueta := fmt.Sprintf("%s %d %s",
			diasLaborables[i], dia.Day(), mesesCortos[int(dia.Month())-1])
		resultado = append(resultado, estadisticas.ConteoDia{
			Fecha:    etiqueta,
			Cantidad: porFecha[dia.Format("2006-01-02")],
		})
	}
	return resultado
}

func topEmpleados(papeletas []papeleta.Papeleta) []estadisticas.ConteoEmpleado {
	conteo := make(map[string]int)
	orden := make([]string, 0)
	for _, p := range papeletas {
		empleado := p.Trabajador
		if empleado == "" {
			empleado = sinNombre
		}
		if _, visto := conteo[empleado]; !visto {
			orden = append(orden, empleado)
		}
		conteo[empleado]++
	}

	resultado := make([]estadisticas.ConteoEmpleado, 0, len(orden))
	for _, empleado := range orden {
		resultado = append(resultado, estadisticas.ConteoEmpleado{Empleado: empleado, Cantidad: conteo[empleado]})
	}
	sort.SliceStable(resultado, func(i, j int) bool {
		return resultado[i].Cantidad > resultado[j].Cantidad
	})
	if len(resultado) > 10 {
		resultado = resultado[:10]
	}
	return resultado
}

// duracionPromedioPorArea averages the round-trip minutes per area over the
// slips that contribute a positive duration. Malformed or non-positive spans
// contribute nothing, to numerator nor denominator; areas left without
// contributors are omitted.
func duracionPromedioPorArea(papeletas []papeleta.Papeleta, porArea []estadisticas.ConteoArea) []estadisticas.DuracionArea {
	resultado := make([]estadisticas.DuracionArea, 0, len(porArea))
	for _, conteo := range porArea {
		totalMinutos := 0
		contribuyentes := 0
		for _, p := range papeletas {
			area := p.Area
			if area == "" {
				area = sinArea
			}
			if area != conteo.Area || !p.TieneRetorno() || p.HoraSalida == "" {
				continue
			}
			salida, err := minutosDeHora(p.HoraSalida)
			if err != nil {
				continue
			}
			retorno, err := minutosDeHora(*p.HoraRetorno)
			if err != nil {
				continue
			}
			duracion := retorno - salida
			if duracion <= 0 {
				continue
			}
			totalMinutos += duracion
			contribuyentes++
		}
		if contribuyentes == 0 {
			continue
		}
		promedio := (totalMinutos + contribuyentes/2) / contribuyentes
		resultado = append(resultado, estadisticas.DuracionArea{
			Area:             conteo.Area,
			DuracionPromedio: promedio,
		})
	}
	return resultado
}

func minutosDeHora(hora string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(hora, "%d:%d", &h, &m); err != nil {
		return 0, err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("hora out of range: %s", hora)
	}
	return h*60 + m, nil
}
