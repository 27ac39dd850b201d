package empleado

// Empleado is a worker from the personnel directory. Lookups by DNI
// prefill the slip form so registrars do not retype names and areas.
type Empleado struct {
	DNI            string `json:"dni"`
	NombreCompleto string `json:"nombre_completo"`
	Area           string `json:"area"`
	Cargo          string `json:"cargo"`
	RegimenLaboral string `json:"regimen_laboral"`
}
