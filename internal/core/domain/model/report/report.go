// Package report defines the per-trip read model maintained by the trip
// report projection. Unlike the aggregates, these are plain data structs:
// the projection owns all update rules and the API layer serializes the
// field set as-is.
package report

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// ReportEvent is one entry of the report's raw event log. The log mirrors
// every accepted trip event and is never deduplicated.
type ReportEvent struct {
	ID        kernel.UUID
	TripID    kernel.UUID
	CreatedAt time.Time
	Type      string
	Payload   string
}

// TripReport is the denormalized summary of one trip, updated incrementally
// as events are accepted. GeneratedAt is a watermark: the latest event
// timestamp folded into the report so far.
type TripReport struct {
	TripID      kernel.UUID
	GeneratedAt time.Time
	CreatedAt   time.Time

	StartedAt       *time.Time
	CompletedAt     *time.Time
	DurationSeconds *int64

	DriverID            kernel.UUID
	DriverName          string
	VehicleID           kernel.UUID
	VehicleRegistration string
	RouteID             kernel.UUID
	RouteOrigin         string
	RouteDestination    string

	// CheckpointsPlanned is copied from the route when the report is first
	// bootstrapped. CheckpointsPassed keeps first-seen order and holds no
	// duplicates even when the same checkpoint event arrives twice.
	CheckpointsPlanned []string
	CheckpointsPassed  []string

	IncidentsCount int64

	// Events is the raw append-only log of accepted events.
	Events []ReportEvent
}

// HasPassedCheckpoint reports whether the named checkpoint was already folded
// into CheckpointsPassed.
func (r *TripReport) HasPassedCheckpoint(name string) bool {
	for _, passed := range r.CheckpointsPassed {
		if passed == name {
			return true
		}
	}
	return false
}
