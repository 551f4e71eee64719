// Package projections contains the incremental read-model builders.
//
// The trip report projection folds each accepted trip event into a
// denormalized per-trip report, one call per event, inside the same
// transaction as the workflow that admitted the event. The report is
// rebuildable in principle from the trip's event history, but it is updated
// incrementally so reads never pay for a replay.
package projections

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/report"
	"dispatch/internal/core/domain/model/trip"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// TripReportProjection maintains the TripReport read model. Construct it from
// the repositories of the unit of work that admitted the event, so every read
// and write happens in the caller's transaction.
type TripReportProjection struct {
	reports  ports.TripReportRepository
	trips    ports.TripRepository
	routes   ports.RouteRepository
	drivers  ports.DriverRepository
	vehicles ports.VehicleRepository
}

// NewTripReportProjection creates a projection over the given repositories.
func NewTripReportProjection(
	reports ports.TripReportRepository,
	trips ports.TripRepository,
	routes ports.RouteRepository,
	drivers ports.DriverRepository,
	vehicles ports.VehicleRepository,
) *TripReportProjection {
	return &TripReportProjection{
		reports:  reports,
		trips:    trips,
		routes:   routes,
		drivers:  drivers,
		vehicles: vehicles,
	}
}

// Apply folds one accepted event into the trip's report.
//
// The raw event log always receives an entry, even when the event changes no
// derived field (duplicate starts, repeated checkpoints). Derived fields are
// where idempotence lives: StartedAt/CompletedAt are first-write-wins,
// CheckpointsPassed has set semantics with first-seen order, and GeneratedAt
// only moves forward.
//
// Apply assumes the event was already validated by the trip aggregate; an
// unknown event type here is a contract violation and fails the transaction.
func (p *TripReportProjection) Apply(ctx context.Context, event trip.Event) error {
	tripReport, err := p.reports.GetByTripID(ctx, event.TripID())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		tripReport, err = p.bootstrap(ctx, event)
		if err != nil {
			return err
		}
	}

	switch event.Type() {
	case trip.EventTripStarted:
		if tripReport.StartedAt == nil {
			startedAt := event.CreatedAt()
			tripReport.StartedAt = &startedAt
		}
	case trip.EventTripCompleted:
		if tripReport.CompletedAt == nil {
			completedAt := event.CreatedAt()
			tripReport.CompletedAt = &completedAt
		}
	case trip.EventCheckpointPassed:
		if event.Payload() != "" && !tripReport.HasPassedCheckpoint(event.Payload()) {
			tripReport.CheckpointsPassed = append(tripReport.CheckpointsPassed, event.Payload())
		}
	case trip.EventAccident:
		tripReport.IncidentsCount++
	default:
		return fmt.Errorf("trip report projection: unknown event type %d", event.Type())
	}

	if tripReport.StartedAt != nil && tripReport.CompletedAt != nil {
		duration := int64(tripReport.CompletedAt.Sub(*tripReport.StartedAt).Seconds())
		tripReport.DurationSeconds = &duration
	}

	if event.CreatedAt().After(tripReport.GeneratedAt) {
		tripReport.GeneratedAt = event.CreatedAt()
	}

	reportEvent := report.ReportEvent{
		ID:        event.ID(),
		TripID:    event.TripID(),
		CreatedAt: event.CreatedAt(),
		Type:      event.Type().String(),
		Payload:   event.Payload(),
	}
	tripReport.Events = append(tripReport.Events, reportEvent)

	if err = p.reports.AddReportEvent(ctx, reportEvent); err != nil {
		return err
	}
	return p.reports.Upsert(ctx, tripReport)
}

// bootstrap builds the initial report for a trip the projection has not seen
// yet: identity and denormalized names from the trip's resources, planned
// checkpoints copied from the route, all derived fields at their zero state.
func (p *TripReportProjection) bootstrap(ctx context.Context, event trip.Event) (*report.TripReport, error) {
	aggregate, err := p.trips.Get(ctx, event.TripID())
	if err != nil {
		return nil, err
	}

	tripRoute, err := p.routes.Get(ctx, aggregate.RouteID())
	if err != nil {
		return nil, err
	}

	tripDriver, err := p.drivers.Get(ctx, aggregate.DriverID())
	if err != nil {
		return nil, err
	}

	tripVehicle, err := p.vehicles.Get(ctx, aggregate.VehicleID())
	if err != nil {
		return nil, err
	}

	return &report.TripReport{
		TripID:              aggregate.ID(),
		GeneratedAt:         event.CreatedAt(),
		CreatedAt:           aggregate.CreatedAt(),
		DriverID:            tripDriver.ID(),
		DriverName:          tripDriver.FullName(),
		VehicleID:           tripVehicle.ID(),
		VehicleRegistration: tripVehicle.RegNumber(),
		RouteID:             tripRoute.ID(),
		RouteOrigin:         tripRoute.Origin(),
		RouteDestination:    tripRoute.Destination(),
		CheckpointsPlanned:  tripRoute.Checkpoints(),
		CheckpointsPassed:   []string{},
		IncidentsCount:      0,
		Events:              []report.ReportEvent{},
	}, nil
}
