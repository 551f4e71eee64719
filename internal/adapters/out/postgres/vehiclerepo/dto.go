// Package vehiclerepo provides data transfer objects and mapping functions for vehicle persistence.
package vehiclerepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
// A NULL current_trip_id marks the vehicle as free for reservation.
type VehicleDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RegistrationNumber string     `gorm:"not null"`
	CurrentTripID      *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for vehicle entities.
// Overrides GORM's default naming convention to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	var currentTripID *uuid.UUID
	if id := aggregate.CurrentTripID(); id != nil {
		raw := id.Bytes()
		currentTripID = &raw
	}

	return VehicleDTO{
		ID:                 aggregate.ID().Bytes(),
		RegistrationNumber: aggregate.RegNumber(),
		CurrentTripID:      currentTripID,
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
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

	return vehicle.RestoreVehicle(id, dto.RegistrationNumber, currentTripID)
}
