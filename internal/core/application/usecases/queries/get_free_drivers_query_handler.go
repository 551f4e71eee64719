package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetFreeDriversQueryHandler retrieves free driver identities from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetFreeDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetFreeDriversQueryHandler creates a handler for free driver queries.
// Requires a GORM database connection for query execution.
func NewGetFreeDriversQueryHandler(db *gorm.DB) GetFreeDriversQueryHandler {
	return GetFreeDriversQueryHandler{db: db}
}

// Handle executes the query for drivers not reserved by any trip.
func (h GetFreeDriversQueryHandler) Handle(
	ctx context.Context,
	query GetFreeDriversQuery,
) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanIDs(h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM drivers
		WHERE current_trip_id IS NULL
		ORDER BY last_name, first_name
	`))
}
