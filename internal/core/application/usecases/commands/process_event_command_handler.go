package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch/internal/core/application/projections"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/trip"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/outcome"
)

// CodeTripNotFound identifies a rejection caused by an unknown trip identity.
const CodeTripNotFound = "trip_not_found"

// ProcessEventCommandHandler admits trip events. Within one transaction it
// advances the trip state machine, releases the driver and vehicle when the
// trip completes, and folds the event into the trip report. A rejected event
// leaves no trace anywhere.
type ProcessEventCommandHandler struct {
	uowFactory ProcessEventUoWFactory
	logger     *slog.Logger
}

// NewProcessEventCommandHandler creates a handler for event admission.
// Requires a ProcessEventUoWFactory for transactional coordination and a
// logger for non-fatal anomalies observed while releasing fleet resources.
func NewProcessEventCommandHandler(
	uowFactory ProcessEventUoWFactory, logger *slog.Logger,
) ProcessEventCommandHandler {
	return ProcessEventCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes a reported trip event.
// The event record is stamped with a fresh identity and the current UTC time
// at admission. Rejections (unknown trip, transition not allowed from the
// current status) come back as failed results with stable codes. On success
// the result carries the identity of the accepted event record.
func (h ProcessEventCommandHandler) Handle(
	ctx context.Context, command ProcessEventCommand,
) (outcome.Result[kernel.UUID], error) {
	if err := command.Validate(); err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}

	event, err := trip.NewEvent(
		kernel.NewUUID(), command.TripID(), time.Now().UTC(), command.EventType(), command.Payload(),
	)
	if err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tripRepo := uow.TripRepository()
	driverRepo := uow.DriverRepository()
	vehicleRepo := uow.VehicleRepository()

	currentTrip, err := tripRepo.Get(ctx, command.TripID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return outcome.Failure[kernel.UUID](outcome.NewError(CodeTripNotFound,
			"trip "+command.TripID().String()+" does not exist")), nil
	}
	if err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}

	updatedTrip, domainErr := currentTrip.AddEvent(event)
	if domainErr != nil {
		return outcome.Failure[kernel.UUID](domainErr), nil
	}

	if err = tripRepo.Update(ctx, updatedTrip); err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}

	if event.Type() == trip.EventTripCompleted {
		if err = h.releaseResources(ctx, driverRepo, vehicleRepo, updatedTrip); err != nil {
			return outcome.Result[kernel.UUID]{}, err
		}
	}

	projection := projections.NewTripReportProjection(
		uow.TripReportRepository(),
		tripRepo,
		uow.RouteRepository(),
		driverRepo,
		vehicleRepo,
	)
	if err = projection.Apply(ctx, event); err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}

	return outcome.Success(event.ID()), nil
}

// releaseResources frees the driver and the vehicle of a completed trip.
// A missing resource record is logged and skipped so a degraded fleet roster
// cannot block trip completion.
func (h ProcessEventCommandHandler) releaseResources(
	ctx context.Context,
	driverRepo ports.DriverRepository,
	vehicleRepo ports.VehicleRepository,
	completedTrip *trip.Trip,
) error {
	tripDriver, err := driverRepo.Get(ctx, completedTrip.DriverID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		h.logger.WarnContext(ctx, "driver missing on trip completion, release skipped",
			"tripID", completedTrip.ID().String(),
			"driverID", completedTrip.DriverID().String())
	case err != nil:
		return err
	default:
		tripDriver.Release()
		if err = driverRepo.Update(ctx, tripDriver); err != nil {
			return err
		}
	}

	tripVehicle, err := vehicleRepo.Get(ctx, completedTrip.VehicleID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		h.logger.WarnContext(ctx, "vehicle missing on trip completion, release skipped",
			"tripID", completedTrip.ID().String(),
			"vehicleID", completedTrip.VehicleID().String())
	case err != nil:
		return err
	default:
		tripVehicle.Release()
		if err = vehicleRepo.Update(ctx, tripVehicle); err != nil {
			return err
		}
	}

	return nil
}
