package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/munidigital/papeletas-backend/internal/domain/papeleta"
)

type PapeletaJobs struct {
	papeletaRepo papeleta.PapeletaRepository
}

func NewPapeletaJobs(papeletaRepo papeleta.PapeletaRepository) *PapeletaJobs {
	return &PapeletaJobs{
		papeletaRepo: papeletaRepo,
	}
}

func (j *PapeletaJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("report_pending_returns", 1*time.Hour, j.ReportPendingReturns)
}

// ReportPendingReturns logs how many of today's papeletas still have no
// return time. Security uses this figure to chase workers near closing time.
func (j *PapeletaJobs) ReportPendingReturns(ctx context.Context) error {
	hoy := time.Now().Format("2006-01-02")

	pendientes, err := j.papeletaRepo.CountSinRetornoHoy(ctx, hoy)
	if err != nil {
		return err
	}

	if pendientes > 0 {
		slog.Info("Cron: papeletas without return today", "fecha", hoy, "pendientes", pendientes)
	}
	return nil
}
