package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrPlanTripCommandIsNotConstructed = errors.New(
	"PlanTripCommand must be created via NewPlanTripCommand constructor",
)

// PlanTripCommand represents a request to plan a new trip.
// Encapsulates the route to travel and the driver and vehicle to reserve for it.
//
// Example:
//
//	cmd, err := NewPlanTripCommand(routeID, driverID, vehicleID)
//	if err != nil {
//	    return fmt.Errorf("invalid trip data: %w", err)
//	}
//
//	handler := NewPlanTripCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if result.IsFailure() {
//	    fmt.Printf("trip rejected: %s", result.Err().Code)
//	}
type PlanTripCommand struct { //nolint:recvcheck //using for validation
	routeID   kernel.UUID
	driverID  kernel.UUID
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlanTripCommand creates a command to plan a trip over the given route
// with the given driver and vehicle. Returns an error if any identity is invalid.
func NewPlanTripCommand(routeID, driverID, vehicleID kernel.UUID) (PlanTripCommand, error) {
	tripCommand := PlanTripCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tripCommand.setRouteID(routeID),
		tripCommand.setDriverID(driverID),
		tripCommand.setVehicleID(vehicleID),
	); err != nil {
		return PlanTripCommand{}, err
	}

	return tripCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlanTripCommandIsNotConstructed if validation fails.
func (c PlanTripCommand) Validate() error {
	return c.guard.Validate(ErrPlanTripCommandIsNotConstructed)
}

// RouteID returns the identity of the route the trip will follow.
func (c PlanTripCommand) RouteID() kernel.UUID {
	return c.routeID
}

// DriverID returns the identity of the driver to reserve.
func (c PlanTripCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the identity of the vehicle to reserve.
func (c PlanTripCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c *PlanTripCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *PlanTripCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *PlanTripCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}
