package trip

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
	"dispatch/internal/pkg/outcome"
)

// ErrTripIsNotConstructed is returned when a Trip instance was not created
// through Plan or RestoreTrip.
var ErrTripIsNotConstructed = errors.New("Trip must be created via Plan or RestoreTrip constructor")

// Trip is the aggregate root representing one planned delivery journey: the
// route it follows, the driver and vehicle reserved for it, and the ordered
// history of accepted lifecycle events.
//
// Trip is an immutable value. AddEvent never mutates the receiver; it returns
// a new Trip with the event appended and the status recomputed. This removes
// aliasing bugs when a trip is read, evaluated, and written back inside one
// transaction.
//
// Invariants:
//   - Created only via Plan (fresh trips) or RestoreTrip (persistence).
//   - The event list is append-only; events are never removed or reordered.
//   - Status transitions follow the table in Status.Next.
type Trip struct {
	id        kernel.UUID
	createdAt time.Time
	routeID   kernel.UUID
	driverID  kernel.UUID
	vehicleID kernel.UUID
	status    Status
	events    []Event

	guard guard.ConstructorGuard
}

// Plan creates a new trip in Planned status with no events.
// The creation instant is stamped by the caller so workflows control the clock.
func Plan(id, routeID, driverID, vehicleID kernel.UUID, createdAt time.Time) (*Trip, error) {
	if err := errors.Join(
		validateID(id, "tripId"),
		validateID(routeID, "routeId"),
		validateID(driverID, "driverId"),
		validateID(vehicleID, "vehicleId"),
	); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Trip{
		id:        id,
		createdAt: createdAt.UTC(),
		routeID:   routeID,
		driverID:  driverID,
		vehicleID: vehicleID,
		status:    StatusPlanned,
		events:    nil,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreTrip reconstructs a trip from persistent storage together with its
// accepted event history. The status must be a valid lifecycle value.
func RestoreTrip(
	id kernel.UUID,
	createdAt time.Time,
	routeID, driverID, vehicleID kernel.UUID,
	status Status,
	events []Event,
) (*Trip, error) {
	if err := errors.Join(
		validateID(id, "tripId"),
		validateID(routeID, "routeId"),
		validateID(driverID, "driverId"),
		validateID(vehicleID, "vehicleId"),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	restored := make([]Event, len(events))
	copy(restored, events)

	return &Trip{
		id:        id,
		createdAt: createdAt.UTC(),
		routeID:   routeID,
		driverID:  driverID,
		vehicleID: vehicleID,
		status:    status,
		events:    restored,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the trip was built through one of the constructors.
func (t *Trip) Validate() error {
	if t == nil {
		return ErrTripIsNotConstructed
	}
	return t.guard.Validate(ErrTripIsNotConstructed)
}

// ID returns the trip's unique identifier.
func (t *Trip) ID() kernel.UUID {
	return t.id
}

// CreatedAt returns the UTC instant the trip was planned.
func (t *Trip) CreatedAt() time.Time {
	return t.createdAt
}

// RouteID returns the identifier of the route the trip follows.
func (t *Trip) RouteID() kernel.UUID {
	return t.routeID
}

// DriverID returns the identifier of the reserved driver.
func (t *Trip) DriverID() kernel.UUID {
	return t.driverID
}

// VehicleID returns the identifier of the reserved vehicle.
func (t *Trip) VehicleID() kernel.UUID {
	return t.vehicleID
}

// Status returns the current lifecycle status.
func (t *Trip) Status() Status {
	return t.status
}

// Events returns a copy of the accepted event history in admission order.
func (t *Trip) Events() []Event {
	events := make([]Event, len(t.events))
	copy(events, t.events)
	return events
}

// IsEqual compares two trips by identity.
func (t *Trip) IsEqual(other *Trip) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// AddEvent decides whether the event is legal for the current status and, if
// so, returns a new Trip with the event appended and the status recomputed.
// On an illegal transition it returns a typed invalid_event failure naming
// the rejected type and the current status. The receiver is never modified
// and nothing is persisted here; the caller owns the surrounding transaction.
func (t *Trip) AddEvent(event Event) (*Trip, *outcome.Error) {
	nextStatus, domainErr := t.status.Next(event.Type())
	if domainErr != nil {
		return nil, domainErr
	}

	events := make([]Event, len(t.events), len(t.events)+1)
	copy(events, t.events)
	events = append(events, event)

	return &Trip{
		id:        t.id,
		createdAt: t.createdAt,
		routeID:   t.routeID,
		driverID:  t.driverID,
		vehicleID: t.vehicleID,
		status:    nextStatus,
		events:    events,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func validateID(id kernel.UUID, paramName string) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(paramName, err)
	}
	return nil
}
