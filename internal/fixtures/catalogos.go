package fixtures

// Motivos admitidos en el formulario de papeletas. El campo acepta texto
// libre; esta lista alimenta el selector y el filtro exacto.
var MotivosPapeleta = []string{
	"Comisión de servicios",
	"Atención médica",
	"Capacitación",
	"Asuntos particulares",
}

// Áreas de la municipalidad, sugeridas en el autocompletado del formulario.
var Areas = []string{
	"Alcaldía",
	"Gerencia Municipal",
	"Secretaría General",
	"Asesoría Jurídica",
	"Oficina General de Administración y Finanzas",
	"Oficina de Tesorería",
	"Oficina de Tecnologías de La Información",
	"Oficina de Recursos Humanos",
	"Oficina de Abastecimiento y Control Patrimonial",
	"Oficina de Planeamiento y Presupuesto",
	"Gerencia de Administración Tributaria",
	"Gerencia Desarrollo Económico y Ambiental",
	"Gerencia de Infraestructura",
	"Gerencia de Desarrollo Territorial y Transporte",
	"Gerencia de Desarrollo Social y Humano",
}

// Regímenes laborales del personal municipal.
var RegimenesLaborales = []string{
	"Decreto Legislativo N° 276",
	"Decreto Legislativo N° 728",
	"Decreto Legislativo N° 1057 - CAS",
	"Locación de Servicios",
}

// Paginación por defecto de los listados.
const ElementosPorPagina = 10

var ElementosPorPaginaOpciones = []int{5, 10, 20, 50}
