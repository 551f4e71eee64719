// Package vehicle contains the Vehicle aggregate. Vehicles carry the same
// exclusivity invariant as drivers: at most one active trip reservation,
// modeled as a nullable back-reference to the current trip.
package vehicle

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrVehicleIsNotConstructed is returned when a Vehicle was not created via
	// NewVehicle or RestoreVehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle constructor")

	// ErrRegNumberIsRequired is returned when creating a vehicle without a
	// registration number.
	ErrRegNumberIsRequired = errs.NewValueIsRequiredError("regNumber")
)

// Vehicle represents a delivery vehicle identified by its registration number.
type Vehicle struct {
	id            kernel.UUID
	regNumber     string
	currentTripID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewVehicle creates a free vehicle with the given identity and registration.
func NewVehicle(id kernel.UUID, regNumber string) (*Vehicle, error) {
	v := &Vehicle{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		v.setID(id),
		v.setRegNumber(regNumber),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a vehicle from persistent storage, including the
// current trip reservation if any.
func RestoreVehicle(id kernel.UUID, regNumber string, currentTripID *kernel.UUID) (*Vehicle, error) {
	v, err := NewVehicle(id, regNumber)
	if err != nil {
		return nil, err
	}

	if currentTripID != nil {
		if err = currentTripID.Validate(); err != nil {
			return nil, err
		}
		tripID := *currentTripID
		v.currentTripID = &tripID
	}

	return v, nil
}

// Validate ensures the vehicle was built through a constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// RegNumber returns the vehicle's registration number.
func (v *Vehicle) RegNumber() string {
	return v.regNumber
}

// CurrentTripID returns the reserved trip's identifier, or nil when free.
func (v *Vehicle) CurrentTripID() *kernel.UUID {
	return v.currentTripID
}

// IsFree reports whether the vehicle has no active trip reservation.
func (v *Vehicle) IsFree() bool {
	return v.currentTripID == nil
}

// Assign reserves the vehicle for the given trip.
// Fails when the vehicle is already reserved for an active trip.
func (v *Vehicle) Assign(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	if v.currentTripID != nil {
		return errs.NewValueIsInvalidErrorWithCause("vehicle",
			fmt.Errorf("vehicle %s is already assigned to trip %s", v.id, v.currentTripID))
	}

	v.currentTripID = &tripID
	return nil
}

// Release clears the trip reservation. Releasing a free vehicle is a no-op.
func (v *Vehicle) Release() {
	v.currentTripID = nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setRegNumber(regNumber string) error {
	if regNumber == "" {
		return ErrRegNumberIsRequired
	}
	v.regNumber = regNumber
	return nil
}
