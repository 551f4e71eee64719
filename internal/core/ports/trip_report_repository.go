package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/report"
)

// TripReportRepository defines the persistence contract for the trip report
// read model and its raw event log.
type TripReportRepository interface {
	// GetByTripID retrieves the report for a trip, including its event log in
	// creation order. Returns errs.ObjectNotFoundError when no report has been
	// projected yet.
	GetByTripID(ctx context.Context, tripID kernel.UUID) (*report.TripReport, error)

	// Upsert inserts or replaces the report row for the report's trip.
	Upsert(ctx context.Context, tripReport *report.TripReport) error

	// AddReportEvent appends one entry to the report's raw event log.
	AddReportEvent(ctx context.Context, event report.ReportEvent) error
}
