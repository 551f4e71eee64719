package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetRoutesQueryIsNotConstructed = errors.New(
	"GetRoutesQuery must be created via NewGetRoutesQuery constructor",
)

// GetRoutesQuery retrieves the identities of all known routes.
type GetRoutesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRoutesQuery creates a query to retrieve all routes.
func NewGetRoutesQuery() GetRoutesQuery {
	return GetRoutesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRoutesQueryIsNotConstructed if validation fails.
func (q GetRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutesQueryIsNotConstructed)
}
