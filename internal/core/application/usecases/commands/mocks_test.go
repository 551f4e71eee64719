package commands_test

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/report"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/domain/model/trip"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) GetAllFreeIDs(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) GetAllFreeIDs(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) GetAllIDs(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockTripRepository struct{ mock.Mock }

func (m *MockTripRepository) Add(ctx context.Context, aggregate *trip.Trip) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTripRepository) Update(ctx context.Context, aggregate *trip.Trip) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTripRepository) Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

type MockTripReportRepository struct{ mock.Mock }

func (m *MockTripReportRepository) GetByTripID(ctx context.Context, tripID kernel.UUID) (*report.TripReport, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.TripReport), args.Error(1)
}

func (m *MockTripReportRepository) Upsert(ctx context.Context, tripReport *report.TripReport) error {
	args := m.Called(ctx, tripReport)
	return args.Error(0)
}

func (m *MockTripReportRepository) AddReportEvent(ctx context.Context, event report.ReportEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockUnitOfWork satisfies both PlanTripUoW and ProcessEventUoW.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUnitOfWork) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUnitOfWork) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

func (m *MockUnitOfWork) TripRepository() ports.TripRepository {
	args := m.Called()
	return args.Get(0).(ports.TripRepository)
}

func (m *MockUnitOfWork) TripReportRepository() ports.TripReportRepository {
	args := m.Called()
	return args.Get(0).(ports.TripReportRepository)
}

type MockPlanTripUoWFactory struct{ mock.Mock }

func (m *MockPlanTripUoWFactory) Create() commands.PlanTripUoW {
	args := m.Called()
	return args.Get(0).(commands.PlanTripUoW)
}

type MockProcessEventUoWFactory struct{ mock.Mock }

func (m *MockProcessEventUoWFactory) Create() commands.ProcessEventUoW {
	args := m.Called()
	return args.Get(0).(commands.ProcessEventUoW)
}
