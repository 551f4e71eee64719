// Package triprepo provides data transfer objects and mapping functions for trip persistence.
// A trip aggregate spans two tables: the trip row and its append-only event rows.
package triprepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/trip"

	"github.com/google/uuid"
)

// TripDTO represents the database structure for persisting trip aggregates.
type TripDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	RouteID   uuid.UUID `gorm:"type:uuid;not null"`
	DriverID  uuid.UUID `gorm:"type:uuid;not null;index"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    int       `gorm:"not null"`
}

// TableName specifies the database table name for trip entities.
// Overrides GORM's default naming convention to use "trips".
func (TripDTO) TableName() string {
	return "trips"
}

// TripEventDTO represents one accepted trip event.
// Rows are append-only; the primary key makes event admission idempotent.
type TripEventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TripID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	EventType int       `gorm:"not null"`
	Payload   string
}

// TableName specifies the database table name for trip event entities.
func (TripEventDTO) TableName() string {
	return "trip_events"
}

// fromDomain converts a trip domain aggregate to its database representation.
func fromDomain(aggregate *trip.Trip) (TripDTO, []TripEventDTO) {
	events := aggregate.Events()
	eventDTOs := make([]TripEventDTO, 0, len(events))
	for _, event := range events {
		eventDTOs = append(eventDTOs, TripEventDTO{
			ID:        event.ID().Bytes(),
			TripID:    event.TripID().Bytes(),
			CreatedAt: event.CreatedAt(),
			EventType: int(event.Type()),
			Payload:   event.Payload(),
		})
	}

	return TripDTO{
		ID:        aggregate.ID().Bytes(),
		CreatedAt: aggregate.CreatedAt(),
		RouteID:   aggregate.RouteID().Bytes(),
		DriverID:  aggregate.DriverID().Bytes(),
		VehicleID: aggregate.VehicleID().Bytes(),
		Status:    int(aggregate.Status()),
	}, eventDTOs
}

// toDomain converts database DTOs to a trip domain aggregate.
// The caller supplies event rows in admission order.
func toDomain(dto TripDTO, eventDTOs []TripEventDTO) (*trip.Trip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	events := make([]trip.Event, 0, len(eventDTOs))
	for _, eventDTO := range eventDTOs {
		event, eventErr := toDomainEvent(eventDTO)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	return trip.RestoreTrip(
		id, dto.CreatedAt, routeID, driverID, vehicleID, trip.Status(dto.Status), events,
	)
}

func toDomainEvent(dto TripEventDTO) (trip.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return trip.Event{}, err
	}

	tripID, err := kernel.UUIDFromBytes(dto.TripID[:])
	if err != nil {
		return trip.Event{}, err
	}

	return trip.NewEvent(id, tripID, dto.CreatedAt, trip.EventType(dto.EventType), dto.Payload)
}
