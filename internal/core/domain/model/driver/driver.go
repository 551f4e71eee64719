// Package driver contains the Driver aggregate. A driver can be reserved for
// at most one active trip at a time; the reservation is modeled as a nullable
// back-reference to the current trip, checked and written inside the
// workflow's transaction.
package driver

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver was not created via
	// NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")

	// ErrFirstNameIsRequired is returned when creating a driver without a first name.
	ErrFirstNameIsRequired = errs.NewValueIsRequiredError("firstName")

	// ErrLastNameIsRequired is returned when creating a driver without a last name.
	ErrLastNameIsRequired = errs.NewValueIsRequiredError("lastName")
)

// Driver represents a delivery driver.
//
// Exclusivity invariant: currentTripID is non-nil iff the driver is reserved
// for exactly one active trip. Assign refuses a second reservation; Release
// clears it when the trip completes.
type Driver struct {
	id            kernel.UUID
	firstName     string
	lastName      string
	currentTripID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewDriver creates a free driver with the given identity and name.
func NewDriver(id kernel.UUID, firstName, lastName string) (*Driver, error) {
	d := &Driver{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setID(id),
		d.setFirstName(firstName),
		d.setLastName(lastName),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver from persistent storage, including the
// current trip reservation if any.
func RestoreDriver(id kernel.UUID, firstName, lastName string, currentTripID *kernel.UUID) (*Driver, error) {
	d, err := NewDriver(id, firstName, lastName)
	if err != nil {
		return nil, err
	}

	if currentTripID != nil {
		if err = currentTripID.Validate(); err != nil {
			return nil, err
		}
		tripID := *currentTripID
		d.currentTripID = &tripID
	}

	return d, nil
}

// Validate ensures the driver was built through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// FirstName returns the driver's first name.
func (d *Driver) FirstName() string {
	return d.firstName
}

// LastName returns the driver's last name.
func (d *Driver) LastName() string {
	return d.lastName
}

// FullName returns "FirstName LastName", the form shown on trip reports.
func (d *Driver) FullName() string {
	return fmt.Sprintf("%s %s", d.firstName, d.lastName)
}

// CurrentTripID returns the reserved trip's identifier, or nil when free.
func (d *Driver) CurrentTripID() *kernel.UUID {
	return d.currentTripID
}

// IsFree reports whether the driver has no active trip reservation.
func (d *Driver) IsFree() bool {
	return d.currentTripID == nil
}

// Assign reserves the driver for the given trip.
// Fails when the driver is already reserved for an active trip.
func (d *Driver) Assign(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	if d.currentTripID != nil {
		return errs.NewValueIsInvalidErrorWithCause("driver",
			fmt.Errorf("driver %s is already assigned to trip %s", d.id, d.currentTripID))
	}

	d.currentTripID = &tripID
	return nil
}

// Release clears the trip reservation. Releasing a free driver is a no-op.
func (d *Driver) Release() {
	d.currentTripID = nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}
	d.firstName = firstName
	return nil
}

func (d *Driver) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}
	d.lastName = lastName
	return nil
}
