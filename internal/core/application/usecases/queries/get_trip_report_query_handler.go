package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTripReportQueryHandler retrieves a trip report from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetTripReportQueryHandler struct {
	db *gorm.DB
}

// NewGetTripReportQueryHandler creates a handler for trip report queries.
// Requires a GORM database connection for query execution.
func NewGetTripReportQueryHandler(db *gorm.DB) GetTripReportQueryHandler {
	return GetTripReportQueryHandler{db: db}
}

// Handle executes the query for one trip report.
// Returns errs.ObjectNotFoundError when no events have been admitted for the
// trip yet. The event log comes back in admission order.
func (h GetTripReportQueryHandler) Handle(
	ctx context.Context,
	query GetTripReportQuery,
) (GetTripReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTripReportQueryResponse{}, err
	}

	response, err := h.fetchReport(ctx, query.TripID())
	if err != nil {
		return GetTripReportQueryResponse{}, err
	}

	response.Events, err = h.fetchEvents(ctx, query.TripID())
	if err != nil {
		return GetTripReportQueryResponse{}, err
	}

	return response, nil
}

func (h GetTripReportQueryHandler) fetchReport(
	ctx context.Context, tripID kernel.UUID,
) (GetTripReportQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			trip_id,
			generated_at,
			created_at,
			started_at,
			completed_at,
			duration_seconds,
			driver_id,
			driver_name,
			vehicle_id,
			vehicle_registration,
			route_id,
			route_origin,
			route_destination,
			checkpoints_planned,
			checkpoints_passed,
			incidents_count
		FROM trip_reports
		WHERE trip_id = ?
	`, tripID.Bytes()).Row()

	var response GetTripReportQueryResponse
	var rawTripID, rawDriverID, rawVehicleID, rawRouteID uuid.UUID
	var startedAt, completedAt sql.NullTime
	var durationSeconds sql.NullInt64
	var plannedJSON, passedJSON string

	err := row.Scan(
		&rawTripID,
		&response.GeneratedAt,
		&response.CreatedAt,
		&startedAt,
		&completedAt,
		&durationSeconds,
		&rawDriverID,
		&response.DriverName,
		&rawVehicleID,
		&response.VehicleRegistration,
		&rawRouteID,
		&response.RouteOrigin,
		&response.RouteDestination,
		&plannedJSON,
		&passedJSON,
		&response.IncidentsCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetTripReportQueryResponse{}, errs.NewObjectNotFoundError("tripReport", tripID.String())
	}
	if err != nil {
		return GetTripReportQueryResponse{}, err
	}

	if response.TripID, err = kernel.UUIDFromBytes(rawTripID[:]); err != nil {
		return GetTripReportQueryResponse{}, err
	}
	if response.DriverID, err = kernel.UUIDFromBytes(rawDriverID[:]); err != nil {
		return GetTripReportQueryResponse{}, err
	}
	if response.VehicleID, err = kernel.UUIDFromBytes(rawVehicleID[:]); err != nil {
		return GetTripReportQueryResponse{}, err
	}
	if response.RouteID, err = kernel.UUIDFromBytes(rawRouteID[:]); err != nil {
		return GetTripReportQueryResponse{}, err
	}

	if startedAt.Valid {
		value := startedAt.Time
		response.StartedAt = &value
	}
	if completedAt.Valid {
		value := completedAt.Time
		response.CompletedAt = &value
	}
	if durationSeconds.Valid {
		value := durationSeconds.Int64
		response.DurationSeconds = &value
	}

	if err = json.Unmarshal([]byte(plannedJSON), &response.CheckpointsPlanned); err != nil {
		return GetTripReportQueryResponse{}, err
	}
	if err = json.Unmarshal([]byte(passedJSON), &response.CheckpointsPassed); err != nil {
		return GetTripReportQueryResponse{}, err
	}

	return response, nil
}

func (h GetTripReportQueryHandler) fetchEvents(
	ctx context.Context, tripID kernel.UUID,
) ([]TripReportEventResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created_at,
			event_type,
			payload
		FROM trip_report_events
		WHERE trip_id = ?
		ORDER BY created_at, id
	`, tripID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]TripReportEventResponse, 0)
	for rows.Next() {
		var event TripReportEventResponse
		var rawID uuid.UUID
		var createdAt time.Time

		if err = rows.Scan(&rawID, &createdAt, &event.Type, &event.Payload); err != nil {
			return nil, err
		}

		if event.ID, err = kernel.UUIDFromBytes(rawID[:]); err != nil {
			return nil, err
		}
		event.CreatedAt = createdAt
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
