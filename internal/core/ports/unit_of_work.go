package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command,
// ensuring isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents one business transaction boundary. Every read and
// write a workflow performs goes through repositories bound to the same
// transaction, so the whole operation commits or rolls back as one.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository

	// VehicleRepository returns a VehicleRepository bound to the current transaction.
	VehicleRepository() VehicleRepository

	// RouteRepository returns a RouteRepository bound to the current transaction.
	RouteRepository() RouteRepository

	// TripRepository returns a TripRepository bound to the current transaction.
	TripRepository() TripRepository

	// TripReportRepository returns a TripReportRepository bound to the current transaction.
	TripReportRepository() TripReportRepository
}
