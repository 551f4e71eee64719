// Package routerepo provides data transfer objects and mapping functions for route persistence.
// Routes are written once at provisioning time and read by trip workflows.
package routerepo

import (
	"encoding/json"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting routes.
// The ordered checkpoint list is stored as a JSON text column.
type RouteDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Origin      string    `gorm:"not null"`
	Destination string    `gorm:"not null"`
	Checkpoints string    `gorm:"type:text;not null"`
}

// TableName specifies the database table name for route entities.
// Overrides GORM's default naming convention to use "routes".
func (RouteDTO) TableName() string {
	return "routes"
}

// fromDomain converts a route to its database representation.
func fromDomain(aggregate *route.Route) (RouteDTO, error) {
	checkpoints := aggregate.Checkpoints()
	if checkpoints == nil {
		checkpoints = []string{}
	}

	encoded, err := json.Marshal(checkpoints)
	if err != nil {
		return RouteDTO{}, err
	}

	return RouteDTO{
		ID:          aggregate.ID().Bytes(),
		Origin:      aggregate.Origin(),
		Destination: aggregate.Destination(),
		Checkpoints: string(encoded),
	}, nil
}

// toDomain converts a database DTO to a route.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var checkpoints []string
	if err = json.Unmarshal([]byte(dto.Checkpoints), &checkpoints); err != nil {
		return nil, err
	}

	return route.RestoreRoute(id, dto.Origin, dto.Destination, checkpoints)
}
