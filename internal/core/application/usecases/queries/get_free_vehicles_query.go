package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetFreeVehiclesQueryIsNotConstructed = errors.New(
	"GetFreeVehiclesQuery must be created via NewGetFreeVehiclesQuery constructor",
)

// GetFreeVehiclesQuery retrieves the identities of vehicles with no current trip.
type GetFreeVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFreeVehiclesQuery creates a query to retrieve all free vehicles.
func NewGetFreeVehiclesQuery() GetFreeVehiclesQuery {
	return GetFreeVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFreeVehiclesQueryIsNotConstructed if validation fails.
func (q GetFreeVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetFreeVehiclesQueryIsNotConstructed)
}
