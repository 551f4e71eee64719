package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
// Same shape as DriverRepository.
type VehicleRepository interface {
	// Get retrieves a vehicle by its unique identifier, including the current
	// trip reservation. Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// Update persists changes to an existing vehicle.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// GetAllFreeIDs returns the identifiers of vehicles with no active trip
	// reservation.
	GetAllFreeIDs(ctx context.Context) ([]kernel.UUID, error)
}
