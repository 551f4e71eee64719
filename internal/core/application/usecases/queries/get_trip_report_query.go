// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetTripReportQueryIsNotConstructed = errors.New(
	"GetTripReportQuery must be created via NewGetTripReportQuery constructor",
)

// GetTripReportQuery retrieves the incrementally built report of one trip.
//
// Example:
//
//	query, err := NewGetTripReportQuery(tripID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetTripReportQueryHandler(db)
//	tripReport, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    fmt.Println("no events admitted yet")
//	}
type GetTripReportQuery struct { //nolint:recvcheck //using for validation
	tripID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTripReportQuery creates a query for the report of the given trip.
// Returns an error if the trip identity is invalid.
func NewGetTripReportQuery(tripID kernel.UUID) (GetTripReportQuery, error) {
	if err := tripID.Validate(); err != nil {
		return GetTripReportQuery{}, err
	}

	return GetTripReportQuery{
		tripID: tripID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTripReportQueryIsNotConstructed if validation fails.
func (q GetTripReportQuery) Validate() error {
	return q.guard.Validate(ErrGetTripReportQueryIsNotConstructed)
}

// TripID returns the identity of the trip whose report is requested.
func (q GetTripReportQuery) TripID() kernel.UUID {
	return q.tripID
}

// GetTripReportQueryResponse is the trip report read model.
// Checkpoint lists keep first-seen order; the event log keeps admission order
// and is never deduplicated.
type GetTripReportQueryResponse struct {
	TripID              kernel.UUID
	GeneratedAt         time.Time
	CreatedAt           time.Time
	StartedAt           *time.Time
	CompletedAt         *time.Time
	DurationSeconds     *int64
	DriverID            kernel.UUID
	DriverName          string
	VehicleID           kernel.UUID
	VehicleRegistration string
	RouteID             kernel.UUID
	RouteOrigin         string
	RouteDestination    string
	CheckpointsPlanned  []string
	CheckpointsPassed   []string
	IncidentsCount      int64
	Events              []TripReportEventResponse
}

// TripReportEventResponse is one entry of the report's raw event log.
type TripReportEventResponse struct {
	ID        kernel.UUID
	CreatedAt time.Time
	Type      string
	Payload   string
}
