// Package ports defines the persistence contracts between the trip workflows
// and infrastructure. These interfaces enable dependency inversion and keep
// the workflows testable without a database.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Get retrieves a driver by its unique identifier, including the current
	// trip reservation. Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// Update persists changes to an existing driver, including setting or
	// clearing the trip reservation.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// GetAllFreeIDs returns the identifiers of drivers with no active trip
	// reservation.
	GetAllFreeIDs(ctx context.Context) ([]kernel.UUID, error)
}
