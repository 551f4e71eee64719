// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// A NULL current_trip_id marks the driver as free for reservation.
type DriverDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FirstName     string     `gorm:"not null"`
	LastName      string     `gorm:"not null"`
	CurrentTripID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	var currentTripID *uuid.UUID
	if id := aggregate.CurrentTripID(); id != nil {
		raw := id.Bytes()
		currentTripID = &raw
	}

	return DriverDTO{
		ID:            aggregate.ID().Bytes(),
		FirstName:     aggregate.FirstName(),
		LastName:      aggregate.LastName(),
		CurrentTripID: currentTripID,
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var currentTripID *kernel.UUID
	if dto.CurrentTripID != nil {
		tripID, tripErr := kernel.UUIDFromBytes((*dto.CurrentTripID)[:])
		if tripErr != nil {
			return nil, tripErr
		}

		currentTripID = &tripID
	}

	return driver.RestoreDriver(id, dto.FirstName, dto.LastName, currentTripID)
}
