package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// DriverRepositoryIntegrationTestSuite provides integration tests for DriverRepository
// using PostgreSQL containers to verify database persistence behavior.
type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
	tracker    *MockAggregateTracker
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&driverrepo.DriverDTO{}))
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = driverrepo.NewGormDriverRepository(suite.db, suite.tracker)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	testDriver, err := driver.NewDriver(kernel.NewUUID(), "Nova", "Starlance")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testDriver.ID(), testDriver).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testDriver))

	loaded, err := suite.repository.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(testDriver.ID()))
	suite.Equal("Nova Starlance", loaded.FullName())
	suite.True(loaded.IsFree())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_AssignAndRelease() {
	ctx := context.Background()

	testDriver, err := driver.NewDriver(kernel.NewUUID(), "Vega", "Holt")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testDriver.ID(), testDriver)
	suite.Require().NoError(suite.repository.Add(ctx, testDriver))

	tripID := kernel.NewUUID()
	suite.Require().NoError(testDriver.Assign(tripID))
	suite.Require().NoError(suite.repository.Update(ctx, testDriver))

	loaded, err := suite.repository.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.CurrentTripID())
	suite.True(loaded.CurrentTripID().IsEqual(tripID))

	// release must persist the NULL current trip
	loaded.Release()
	suite.tracker.On("TrackAggregate", loaded.ID(), loaded)
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	released, err := suite.repository.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(released.IsFree())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()

	testDriver, err := driver.NewDriver(kernel.NewUUID(), "Ghost", "Rider")
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, testDriver)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetAllFreeIDs() {
	ctx := context.Background()

	free, err := driver.NewDriver(kernel.NewUUID(), "Ada", "Frey")
	suite.Require().NoError(err)
	busyTrip := kernel.NewUUID()
	busy, err := driver.RestoreDriver(kernel.NewUUID(), "Brin", "Oduya", &busyTrip)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, free))
	suite.Require().NoError(suite.repository.Add(ctx, busy))

	ids, err := suite.repository.GetAllFreeIDs(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(ids, 1)
	suite.True(ids[0].IsEqual(free.ID()))
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
