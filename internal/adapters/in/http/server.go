// Package http exposes the dispatch workflows over a JSON API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/trip"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/outcome"

	"github.com/labstack/echo/v4"
)

// ErrorResponse carries a stable failure code and a human readable message.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreateTripRequest is the payload for planning a trip.
type CreateTripRequest struct {
	RouteID   string `json:"routeId"`
	DriverID  string `json:"driverId"`
	VehicleID string `json:"vehicleId"`
}

// TripResponse echoes the planned trip back to the caller.
type TripResponse struct {
	TripID    string `json:"tripId"`
	RouteID   string `json:"routeId"`
	DriverID  string `json:"driverId"`
	VehicleID string `json:"vehicleId"`
}

// CreateEventRequest is the payload for reporting a trip event.
type CreateEventRequest struct {
	TripID  string `json:"tripId"`
	Type    string `json:"type"`
	Payload string `json:"payload"`
}

// Server wires HTTP routes to command and query handlers.
type Server struct {
	planTripHandler     commands.PlanTripCommandHandler
	processEventHandler commands.ProcessEventCommandHandler

	getTripReportHandler   queries.GetTripReportQueryHandler
	getFreeDriversHandler  queries.GetFreeDriversQueryHandler
	getFreeVehiclesHandler queries.GetFreeVehiclesQueryHandler
	getRoutesHandler       queries.GetRoutesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	planTripHandler commands.PlanTripCommandHandler,
	processEventHandler commands.ProcessEventCommandHandler,
	getTripReportHandler queries.GetTripReportQueryHandler,
	getFreeDriversHandler queries.GetFreeDriversQueryHandler,
	getFreeVehiclesHandler queries.GetFreeVehiclesQueryHandler,
	getRoutesHandler queries.GetRoutesQueryHandler,
) *Server {
	return &Server{
		planTripHandler:        planTripHandler,
		processEventHandler:    processEventHandler,
		getTripReportHandler:   getTripReportHandler,
		getFreeDriversHandler:  getFreeDriversHandler,
		getFreeVehiclesHandler: getFreeVehiclesHandler,
		getRoutesHandler:       getRoutesHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/drivers/free", s.GetFreeDrivers)
	e.GET("/api/vehicles/free", s.GetFreeVehicles)
	e.GET("/api/routes/all", s.GetRoutes)
	e.POST("/api/trip", s.CreateTrip)
	e.GET("/api/reports/trips-report/:tripId", s.GetTripReport)
	e.POST("/queue/event", s.CreateEvent)
}

// CreateTrip handles POST /api/trip - plans a new trip.
func (s *Server) CreateTrip(ctx echo.Context) error {
	var request CreateTripRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "invalid_request",
			Message: "invalid request body",
		})
	}

	routeID, err := kernel.UUIDFromString(request.RouteID)
	if err != nil {
		return badRequest(ctx, "routeId must be a valid uuid")
	}
	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return badRequest(ctx, "driverId must be a valid uuid")
	}
	vehicleID, err := kernel.UUIDFromString(request.VehicleID)
	if err != nil {
		return badRequest(ctx, "vehicleId must be a valid uuid")
	}

	cmd, err := commands.NewPlanTripCommand(routeID, driverID, vehicleID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.planTripHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "failed to plan trip")
	}

	if result.IsFailure() {
		return failure(ctx, result.Err())
	}

	return ctx.JSON(http.StatusOK, TripResponse{
		TripID:    result.Value().String(),
		RouteID:   routeID.String(),
		DriverID:  driverID.String(),
		VehicleID: vehicleID.String(),
	})
}

// CreateEvent handles POST /queue/event - admits a trip event.
func (s *Server) CreateEvent(ctx echo.Context) error {
	var request CreateEventRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "invalid_request",
			Message: "invalid request body",
		})
	}

	tripID, err := kernel.UUIDFromString(request.TripID)
	if err != nil {
		return badRequest(ctx, "tripId must be a valid uuid")
	}

	eventType, err := trip.EventTypeFromString(request.Type)
	if err != nil {
		return badRequest(ctx, "unknown event type: "+request.Type)
	}

	cmd, err := commands.NewProcessEventCommand(tripID, eventType, request.Payload)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.processEventHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "failed to process event")
	}

	if result.IsFailure() {
		return failure(ctx, result.Err())
	}

	return ctx.JSON(http.StatusOK, result.Value().String())
}

// GetTripReport handles GET /api/reports/trips-report/:tripId.
func (s *Server) GetTripReport(ctx echo.Context) error {
	tripID, err := kernel.UUIDFromString(ctx.Param("tripId"))
	if err != nil {
		return badRequest(ctx, "tripId must be a valid uuid")
	}

	query, err := queries.NewGetTripReportQuery(tripID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getTripReportHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.NoContent(http.StatusNotFound)
	}
	if err != nil {
		return internalError(ctx, "failed to retrieve trip report")
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetFreeDrivers handles GET /api/drivers/free.
func (s *Server) GetFreeDrivers(ctx echo.Context) error {
	ids, err := s.getFreeDriversHandler.Handle(ctx.Request().Context(), queries.NewGetFreeDriversQuery())
	if err != nil {
		return internalError(ctx, "failed to retrieve free drivers")
	}

	return ctx.JSON(http.StatusOK, idStrings(ids))
}

// GetFreeVehicles handles GET /api/vehicles/free.
func (s *Server) GetFreeVehicles(ctx echo.Context) error {
	ids, err := s.getFreeVehiclesHandler.Handle(ctx.Request().Context(), queries.NewGetFreeVehiclesQuery())
	if err != nil {
		return internalError(ctx, "failed to retrieve free vehicles")
	}

	return ctx.JSON(http.StatusOK, idStrings(ids))
}

// GetRoutes handles GET /api/routes/all.
func (s *Server) GetRoutes(ctx echo.Context) error {
	ids, err := s.getRoutesHandler.Handle(ctx.Request().Context(), queries.NewGetRoutesQuery())
	if err != nil {
		return internalError(ctx, "failed to retrieve routes")
	}

	return ctx.JSON(http.StatusOK, idStrings(ids))
}

func failure(ctx echo.Context, domainErr *outcome.Error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    domainErr.Code,
		Message: domainErr.Message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    "invalid_request",
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    "internal_error",
		Message: message,
	})
}

func idStrings(ids []kernel.UUID) []string {
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}
	return values
}
