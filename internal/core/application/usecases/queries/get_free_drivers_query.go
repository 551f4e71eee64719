package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetFreeDriversQueryIsNotConstructed = errors.New(
	"GetFreeDriversQuery must be created via NewGetFreeDriversQuery constructor",
)

// GetFreeDriversQuery retrieves the identities of drivers with no current trip.
type GetFreeDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFreeDriversQuery creates a query to retrieve all free drivers.
func NewGetFreeDriversQuery() GetFreeDriversQuery {
	return GetFreeDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFreeDriversQueryIsNotConstructed if validation fails.
func (q GetFreeDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetFreeDriversQueryIsNotConstructed)
}
