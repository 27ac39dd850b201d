package estadisticas

import "context"

// EstadisticasService computes derived views over the slip snapshot.
type EstadisticasService interface {
	// GetEstadisticas aggregates the full snapshot, or only the slips of the
	// given month when mes ("YYYY-MM") is non-empty.
	GetEstadisticas(ctx context.Context, mes string) (*Estadisticas, error)

	// GetPanelAdmin returns the user/slip counters for the admin cards.
	GetPanelAdmin(ctx context.Context) (*PanelAdmin, error)
}
