// Package reportrepo provides data transfer objects and mapping functions for
// the trip report read model. The report row is rewritten on every fold while
// its raw event log grows append-only.
package reportrepo

import (
	"encoding/json"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/report"

	"github.com/google/uuid"
)

// TripReportDTO represents the database structure for persisting trip reports.
// Checkpoint lists are stored as JSON text columns.
type TripReportDTO struct {
	TripID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	GeneratedAt         time.Time `gorm:"not null"`
	CreatedAt           time.Time `gorm:"not null"`
	StartedAt           *time.Time
	CompletedAt         *time.Time
	DurationSeconds     *int64
	DriverID            uuid.UUID `gorm:"type:uuid;not null"`
	DriverName          string    `gorm:"not null"`
	VehicleID           uuid.UUID `gorm:"type:uuid;not null"`
	VehicleRegistration string    `gorm:"not null"`
	RouteID             uuid.UUID `gorm:"type:uuid;not null"`
	RouteOrigin         string    `gorm:"not null"`
	RouteDestination    string    `gorm:"not null"`
	CheckpointsPlanned  string    `gorm:"type:text;not null"`
	CheckpointsPassed   string    `gorm:"type:text;not null"`
	IncidentsCount      int64     `gorm:"not null"`
}

// TableName specifies the database table name for trip report entities.
func (TripReportDTO) TableName() string {
	return "trip_reports"
}

// TripReportEventDTO represents one entry of a report's raw event log.
type TripReportEventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TripID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	EventType string    `gorm:"not null"`
	Payload   string
}

// TableName specifies the database table name for trip report event entities.
func (TripReportEventDTO) TableName() string {
	return "trip_report_events"
}

// fromDomain converts a trip report read model to its database representation.
// The event log is persisted separately through AddReportEvent.
func fromDomain(tripReport *report.TripReport) (TripReportDTO, error) {
	planned, err := encodeCheckpoints(tripReport.CheckpointsPlanned)
	if err != nil {
		return TripReportDTO{}, err
	}
	passed, err := encodeCheckpoints(tripReport.CheckpointsPassed)
	if err != nil {
		return TripReportDTO{}, err
	}

	return TripReportDTO{
		TripID:              tripReport.TripID.Bytes(),
		GeneratedAt:         tripReport.GeneratedAt,
		CreatedAt:           tripReport.CreatedAt,
		StartedAt:           tripReport.StartedAt,
		CompletedAt:         tripReport.CompletedAt,
		DurationSeconds:     tripReport.DurationSeconds,
		DriverID:            tripReport.DriverID.Bytes(),
		DriverName:          tripReport.DriverName,
		VehicleID:           tripReport.VehicleID.Bytes(),
		VehicleRegistration: tripReport.VehicleRegistration,
		RouteID:             tripReport.RouteID.Bytes(),
		RouteOrigin:         tripReport.RouteOrigin,
		RouteDestination:    tripReport.RouteDestination,
		CheckpointsPlanned:  planned,
		CheckpointsPassed:   passed,
		IncidentsCount:      tripReport.IncidentsCount,
	}, nil
}

// toDomain converts database DTOs to a trip report read model.
// The caller supplies event log rows in admission order.
func toDomain(dto TripReportDTO, eventDTOs []TripReportEventDTO) (*report.TripReport, error) {
	tripID, err := kernel.UUIDFromBytes(dto.TripID[:])
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
	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}

	var planned, passed []string
	if err = json.Unmarshal([]byte(dto.CheckpointsPlanned), &planned); err != nil {
		return nil, err
	}
	if err = json.Unmarshal([]byte(dto.CheckpointsPassed), &passed); err != nil {
		return nil, err
	}

	events := make([]report.ReportEvent, 0, len(eventDTOs))
	for _, eventDTO := range eventDTOs {
		event, eventErr := toDomainEvent(eventDTO)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	return &report.TripReport{
		TripID:              tripID,
		GeneratedAt:         dto.GeneratedAt,
		CreatedAt:           dto.CreatedAt,
		StartedAt:           dto.StartedAt,
		CompletedAt:         dto.CompletedAt,
		DurationSeconds:     dto.DurationSeconds,
		DriverID:            driverID,
		DriverName:          dto.DriverName,
		VehicleID:           vehicleID,
		VehicleRegistration: dto.VehicleRegistration,
		RouteID:             routeID,
		RouteOrigin:         dto.RouteOrigin,
		RouteDestination:    dto.RouteDestination,
		CheckpointsPlanned:  planned,
		CheckpointsPassed:   passed,
		IncidentsCount:      dto.IncidentsCount,
		Events:              events,
	}, nil
}

func fromDomainEvent(event report.ReportEvent) TripReportEventDTO {
	return TripReportEventDTO{
		ID:        event.ID.Bytes(),
		TripID:    event.TripID.Bytes(),
		CreatedAt: event.CreatedAt,
		EventType: event.Type,
		Payload:   event.Payload,
	}
}

func toDomainEvent(dto TripReportEventDTO) (report.ReportEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return report.ReportEvent{}, err
	}

	tripID, err := kernel.UUIDFromBytes(dto.TripID[:])
	if err != nil {
		return report.ReportEvent{}, err
	}

	return report.ReportEvent{
		ID:        id,
		TripID:    tripID,
		CreatedAt: dto.CreatedAt,
		Type:      dto.EventType,
		Payload:   dto.Payload,
	}, nil
}

func encodeCheckpoints(checkpoints []string) (string, error) {
	if checkpoints == nil {
		checkpoints = []string{}
	}

	encoded, err := json.Marshal(checkpoints)
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}
