package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// FleetMonitorJob periodically reports fleet availability.
// Runs every minute and logs how many drivers and vehicles are free,
// giving dispatchers a heartbeat view of capacity without querying the API.
type FleetMonitorJob struct {
	freeDriversHandler  queries.GetFreeDriversQueryHandler
	freeVehiclesHandler queries.GetFreeVehiclesQueryHandler
	cron                *cron.Cron
	logger              *slog.Logger
}

// NewFleetMonitorJob creates a new fleet monitoring job.
// Uses the free driver and free vehicle query handlers to sample availability.
func NewFleetMonitorJob(
	freeDriversHandler queries.GetFreeDriversQueryHandler,
	freeVehiclesHandler queries.GetFreeVehiclesQueryHandler,
	logger *slog.Logger,
) *FleetMonitorJob {
	return &FleetMonitorJob{
		freeDriversHandler:  freeDriversHandler,
		freeVehiclesHandler: freeVehiclesHandler,
		cron:                cron.New(cron.WithSeconds()),
		logger:              logger.With("component", "fleet_monitor_job"),
	}
}

// Start begins the fleet monitoring job to run every minute.
func (j *FleetMonitorJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		drivers, err := j.freeDriversHandler.Handle(ctx, queries.NewGetFreeDriversQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Fleet monitor job failed to count free drivers", "error", err)
			return
		}

		vehicles, err := j.freeVehiclesHandler.Handle(ctx, queries.NewGetFreeVehiclesQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Fleet monitor job failed to count free vehicles", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Fleet availability",
			"freeDrivers", len(drivers),
			"freeVehicles", len(vehicles),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fleet monitor job started (running every minute)")
	return nil
}

// Stop stops the fleet monitoring job.
func (j *FleetMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fleet monitor job stopped")
}
