// Package route contains the Route aggregate: an origin, a destination, and
// the ordered list of named checkpoints between them. Routes are immutable
// once created and are read-only for the trip workflows.
package route

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrRouteIsNotConstructed is returned when a Route was not created via
	// NewRoute or RestoreRoute.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute constructor")

	// ErrOriginIsRequired is returned when creating a route without an origin.
	ErrOriginIsRequired = errs.NewValueIsRequiredError("origin")

	// ErrDestinationIsRequired is returned when creating a route without a destination.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
)

// Route describes a delivery path. Checkpoints are the planned stops in
// travel order; a route with no checkpoints is valid.
type Route struct {
	id          kernel.UUID
	origin      string
	destination string
	checkpoints []string

	guard guard.ConstructorGuard
}

// NewRoute creates a route with the given endpoints and planned checkpoints.
func NewRoute(id kernel.UUID, origin, destination string, checkpoints []string) (*Route, error) {
	r := &Route{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setID(id),
		r.setOrigin(origin),
		r.setDestination(destination),
	); err != nil {
		return nil, err
	}

	r.checkpoints = make([]string, len(checkpoints))
	copy(r.checkpoints, checkpoints)

	return r, nil
}

// RestoreRoute reconstructs a route from persistent storage.
func RestoreRoute(id kernel.UUID, origin, destination string, checkpoints []string) (*Route, error) {
	return NewRoute(id, origin, destination, checkpoints)
}

// Validate ensures the route was built through a constructor.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// Origin returns the starting point of the route.
func (r *Route) Origin() string {
	return r.origin
}

// Destination returns the end point of the route.
func (r *Route) Destination() string {
	return r.destination
}

// Checkpoints returns a copy of the planned checkpoint names in travel order.
func (r *Route) Checkpoints() []string {
	checkpoints := make([]string, len(r.checkpoints))
	copy(checkpoints, r.checkpoints)
	return checkpoints
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setOrigin(origin string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}
	r.origin = origin
	return nil
}

func (r *Route) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}
	r.destination = destination
	return nil
}
