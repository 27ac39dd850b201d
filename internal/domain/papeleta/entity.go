package papeleta

import "time"

// Papeleta is an exit slip. Fecha is a plain calendar date (YYYY-MM-DD) and
// the hora fields are wall-clock HH:mm values; both are normalized once, when
// the record is scanned out of storage.
type Papeleta struct {
	ID             string
	Codigo         string
	Trabajador     string
	DNI            string
	Area           string
	Cargo          string
	RegimenLaboral string
	OficinaVisitar string
	Motivo         string
	Fundamentacion string
	Fecha          string
	HoraSalida     string
	HoraRetorno    *string // nil = sin retorno
	FechaCreacion  time.Time
}

// TieneRetorno reports whether the slip has a registered return time.
func (p *Papeleta) TieneRetorno() bool {
	return p.HoraRetorno != nil && *p.HoraRetorno != ""
}
