package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetFreeVehiclesQueryHandler retrieves free vehicle identities from the database.
type GetFreeVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetFreeVehiclesQueryHandler creates a handler for free vehicle queries.
// Requires a GORM database connection for query execution.
func NewGetFreeVehiclesQueryHandler(db *gorm.DB) GetFreeVehiclesQueryHandler {
	return GetFreeVehiclesQueryHandler{db: db}
}

// Handle executes the query for vehicles not reserved by any trip.
func (h GetFreeVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetFreeVehiclesQuery,
) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanIDs(h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM vehicles
		WHERE current_trip_id IS NULL
		ORDER BY registration_number
	`))
}
