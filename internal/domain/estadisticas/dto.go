package estadisticas

// Estadisticas is the full set of derived views the HR dashboard consumes.
// Every view degrades to its empty form (zero counts, empty lists, "N/A")
// when the snapshot is empty.
type Estadisticas struct {
	TotalPapeletas      int              `json:"total_papeletas"`
	PapeletasHoy        int              `json:"papeletas_hoy"`
	AreaMasSolicitada   string           `json:"area_mas_solicitada"`
	PapeletasSinRetorno int              `json:"papeletas_sin_retorno"`
	PorArea             []ConteoArea     `json:"por_area"`
	PorMotivo           []ConteoMotivo   `json:"por_motivo"`
	PorDia              []ConteoDia      `json:"por_dia"`
	PorDiaLaboral       []ConteoDia      `json:"por_dia_laboral"`
	RetornoStats        RetornoStats     `json:"retorno_stats"`
	TopEmpleados        []ConteoEmpleado `json:"top_empleados"`
	DuracionPromedio    []DuracionArea   `json:"duracion_promedio"`
}

type ConteoArea struct {
	Area     string `json:"area"`
	Cantidad int    `json:"cantidad"`
}

type ConteoMotivo struct {
	Motivo   string `json:"motivo"`
	Cantidad int    `json:"cantidad"`
}

// ConteoDia is one bar of a per-day chart; Fecha is the display label
// ("lun, 25 ago" for the rolling week, "Lunes 25 ago" for the business week).
type ConteoDia struct {
	Fecha    string `json:"fecha"`
	Cantidad int    `json:"cantidad"`
}

type RetornoStats struct {
	ConRetorno int `json:"con_retorno"`
	SinRetorno int `json:"sin_retorno"`
}

type ConteoEmpleado struct {
	Empleado string `json:"empleado"`
	Cantidad int    `json:"cantidad"`
}

// DuracionArea is the rounded average trip duration in minutes for one area.
// Areas without a single positive-duration trip are omitted from the view.
type DuracionArea struct {
	Area             string `json:"area"`
	DuracionPromedio int    `json:"duracion_promedio"`
}

// PanelAdmin combines the counters shown on the admin landing cards.
type PanelAdmin struct {
	TotalUsuarios  int64            `json:"total_usuarios"`
	PorRol         map[string]int64 `json:"por_rol"`
	TotalPapeletas int64            `json:"total_papeletas"`
}
