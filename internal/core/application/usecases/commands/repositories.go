// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// TripRepoFactory provides access to the trip repository within a transaction.
	TripRepoFactory interface {
		TripRepository() ports.TripRepository
	}

	// TripReportRepoFactory provides access to the trip report repository within a transaction.
	TripReportRepoFactory interface {
		TripReportRepository() ports.TripReportRepository
	}

	// PlanTripUoW manages transactions for trip planning.
	// Planning reserves a driver and a vehicle and records the trip,
	// so all four repositories share one transaction.
	PlanTripUoW interface {
		TxManager
		DriverRepoFactory
		VehicleRepoFactory
		RouteRepoFactory
		TripRepoFactory
	}

	// PlanTripUoWFactory creates new trip planning unit of work instances.
	PlanTripUoWFactory interface {
		Create() PlanTripUoW
	}

	// ProcessEventUoW manages transactions for event processing.
	// Event processing advances the trip, may release the driver and vehicle,
	// and folds the event into the trip report, all atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tripRepo := uow.TripRepository()
	//   reportRepo := uow.TripReportRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ProcessEventUoW interface {
		TxManager
		DriverRepoFactory
		VehicleRepoFactory
		RouteRepoFactory
		TripRepoFactory
		TripReportRepoFactory
	}

	// ProcessEventUoWFactory creates new event processing unit of work instances.
	ProcessEventUoWFactory interface {
		Create() ProcessEventUoW
	}
)
