package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/trip"
)

// TripRepository defines the persistence contract for trip aggregates and
// their embedded event history.
type TripRepository interface {
	// Add persists a freshly planned trip.
	Add(ctx context.Context, aggregate *trip.Trip) error

	// Update persists changes to an existing trip. Any events embedded in the
	// aggregate that are not yet stored are persisted as part of the same
	// call; already-stored events are left untouched.
	Update(ctx context.Context, aggregate *trip.Trip) error

	// Get retrieves a trip with its accepted events in admission order.
	// Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error)
}
