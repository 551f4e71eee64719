package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
)

// RouteRepository defines the read-only persistence contract for routes.
// Routes are immutable once created; the trip core never writes them.
type RouteRepository interface {
	// Get retrieves a route by its unique identifier.
	// Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetAllIDs returns the identifiers of all known routes.
	GetAllIDs(ctx context.Context) ([]kernel.UUID, error)
}
