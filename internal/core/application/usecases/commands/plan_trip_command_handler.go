package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/trip"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/outcome"
)

// Stable failure codes for trip planning. Callers branch on the code,
// the message is for humans.
const (
	CodeDriverNotFound         = "driver_not_found"
	CodeDriverAlreadyAssigned  = "driver_already_assigned"
	CodeVehicleNotFound        = "vehicle_not_found"
	CodeVehicleAlreadyAssigned = "vehicle_already_assigned"
	CodeRouteNotFound          = "route_not_found"
)

// PlanTripCommandHandler orchestrates trip planning. Reserves the driver and
// the vehicle and records the planned trip within a single transaction, so a
// rejected reservation leaves nothing behind.
//
// Example:
//
//	handler := NewPlanTripCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("planning failed: %v", err)
//	    return
//	}
//	result.Match(
//	    func(tripID kernel.UUID) { log.Printf("trip %s planned", tripID) },
//	    func(failure *outcome.Error) { log.Printf("rejected: %s", failure.Code) },
//	)
type PlanTripCommandHandler struct {
	uowFactory PlanTripUoWFactory
}

// NewPlanTripCommandHandler creates a handler for trip planning operations.
// Requires a PlanTripUoWFactory for coordinating transactional updates across repositories.
func NewPlanTripCommandHandler(uowFactory PlanTripUoWFactory) PlanTripCommandHandler {
	return PlanTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trip planning command.
// Checks the driver first, then the vehicle, then the route. A missing or
// already reserved resource produces a failed result with a stable code and
// rolls the transaction back. Infrastructure problems are returned as plain
// errors. On success both resources point at the new trip and the result
// carries its identity.
func (h PlanTripCommandHandler) Handle(
	ctx context.Context, command PlanTripCommand,
) (outcome.Result[kernel.UUID], error) {
	if err := command.Validate(); err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	vehicleRepo := uow.VehicleRepository()
	routeRepo := uow.RouteRepository()
	tripRepo := uow.TripRepository()

	tripDriver, err := driverRepo.Get(ctx, command.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return outcome.Failure[kernel.UUID](outcome.NewError(CodeDriverNotFound,
			fmt.Sprintf("driver %s does not exist", command.DriverID()))), nil
	}
	if err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}
	if !tripDriver.IsFree() {
		return outcome.Failure[kernel.UUID](outcome.NewError(CodeDriverAlreadyAssigned,
			fmt.Sprintf("driver %s is already assigned to trip %s",
				tripDriver.ID(), tripDriver.CurrentTripID()))), nil
	}

	tripVehicle, err := vehicleRepo.Get(ctx, command.VehicleID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return outcome.Failure[kernel.UUID](outcome.NewError(CodeVehicleNotFound,
			fmt.Sprintf("vehicle %s does not exist", command.VehicleID()))), nil
	}
	if err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}
	if !tripVehicle.IsFree() {
		return outcome.Failure[kernel.UUID](outcome.NewError(CodeVehicleAlreadyAssigned,
			fmt.Sprintf("vehicle %s is already assigned to trip %s",
				tripVehicle.ID(), tripVehicle.CurrentTripID()))), nil
	}

	if _, err = routeRepo.Get(ctx, command.RouteID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return outcome.Failure[kernel.UUID](outcome.NewError(CodeRouteNotFound,
				fmt.Sprintf("route %s does not exist", command.RouteID()))), nil
		}
		return outcome.Result[kernel.UUID]{}, err
	}

	tripID := kernel.NewUUID()
	plannedTrip, err := trip.Plan(
		tripID, command.RouteID(), command.DriverID(), command.VehicleID(), time.Now().UTC(),
	)
	if err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}

	if err = tripRepo.Add(ctx, plannedTrip); err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}

	if err = tripDriver.Assign(tripID); err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}
	if err = tripVehicle.Assign(tripID); err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}

	if err = driverRepo.Update(ctx, tripDriver); err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}
	if err = vehicleRepo.Update(ctx, tripVehicle); err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return outcome.Result[kernel.UUID]{}, err
	}

	return outcome.Success(tripID), nil
}
