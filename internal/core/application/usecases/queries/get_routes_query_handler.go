package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetRoutesQueryHandler retrieves route identities from the database.
type GetRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetRoutesQueryHandler creates a handler for route listing queries.
// Requires a GORM database connection for query execution.
func NewGetRoutesQueryHandler(db *gorm.DB) GetRoutesQueryHandler {
	return GetRoutesQueryHandler{db: db}
}

// Handle executes the query for all route identities.
func (h GetRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetRoutesQuery,
) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanIDs(h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM routes
		ORDER BY origin, destination
	`))
}
