package riderepo_test

import (
	"context"
	"testing"
	"time"

	"ridehail/internal/adapters/out/postgres/riderepo"
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/ride"
	"ridehail/internal/core/domain/model/user"
	"ridehail/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// RideRepositoryIntegrationTestSuite provides integration tests for RideRepository
// using PostgreSQL containers to verify database persistence behavior.
type RideRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *riderepo.GormRideRepository
	tracker    *MockAggregateTracker
}

func (suite *RideRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&riderepo.RideDTO{}))
}

func (suite *RideRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE rides").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = riderepo.NewGormRideRepository(suite.db, suite.tracker)
}

func (suite *RideRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RideRepositoryIntegrationTestSuite) TestAdd_ValidRide_Success() {
	ctx := context.Background()

	testRide := suite.createTestRide()
	suite.tracker.On("TrackAggregate", testRide.ID(), testRide).Once()

	err := suite.repository.Add(ctx, testRide)
	suite.Require().NoError(err)

	suite.assertRideCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RideRepositoryIntegrationTestSuite) TestGet_ExistingRide_RoundTrip() {
	ctx := context.Background()

	testRide := suite.createTestRide()
	suite.allowTracking()
	suite.Require().NoError(suite.repository.Add(ctx, testRide))

	restored, err := suite.repository.Get(ctx, testRide.ID())
	suite.Require().NoError(err)

	suite.True(testRide.ID().IsEqual(restored.ID()))
	suite.True(testRide.PassengerID().IsEqual(restored.PassengerID()))
	suite.Equal(ride.StatusCreated, restored.Status())
	suite.Nil(restored.DriverID())
	suite.Nil(restored.FinalFare())
	suite.Equal(int64(0), restored.Version())

	pickupEqual, err := testRide.Pickup().IsEqual(restored.Pickup())
	suite.Require().NoError(err)
	suite.True(pickupEqual)

	destinationEqual, err := testRide.Destination().IsEqual(restored.Destination())
	suite.Require().NoError(err)
	suite.True(destinationEqual)

	fareEqual, err := testRide.EstimatedFare().IsEqual(restored.EstimatedFare())
	suite.Require().NoError(err)
	suite.True(fareEqual)
}

func (suite *RideRepositoryIntegrationTestSuite) TestGet_NonExistentRide_ReturnsNotFound() {
	ctx := context.Background()

	result, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RideRepositoryIntegrationTestSuite) TestUpdate_AcceptedRide_PersistsTransition() {
	ctx := context.Background()

	testRide := suite.createTestRide()
	suite.allowTracking()
	suite.Require().NoError(suite.repository.Add(ctx, testRide))

	driver := suite.createTestDriver()
	_, err := testRide.Accept(driver, time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, testRide))

	restored, err := suite.repository.Get(ctx, testRide.ID())
	suite.Require().NoError(err)
	suite.Equal(ride.StatusAccepted, restored.Status())
	suite.Require().NotNil(restored.DriverID())
	suite.True(driver.ID().IsEqual(*restored.DriverID()))
	suite.NotNil(restored.AcceptedAt())
	suite.Equal(int64(1), restored.Version())
}

func (suite *RideRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConcurrencyConflict() {
	ctx := context.Background()

	testRide := suite.createTestRide()
	suite.allowTracking()
	suite.Require().NoError(suite.repository.Add(ctx, testRide))

	// Two handlers load the same ride concurrently
	firstCopy, err := suite.repository.Get(ctx, testRide.ID())
	suite.Require().NoError(err)
	secondCopy, err := suite.repository.Get(ctx, testRide.ID())
	suite.Require().NoError(err)

	firstDriver := suite.createTestDriver()
	_, err = firstCopy.Accept(firstDriver, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, firstCopy))

	// The slower handler works from a stale version and must lose the race
	secondDriver := suite.createTestDriver()
	_, err = secondCopy.Accept(secondDriver, time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, secondCopy)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConcurrencyConflict)

	// The first driver keeps the ride
	restored, err := suite.repository.Get(ctx, testRide.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(restored.DriverID())
	suite.True(firstDriver.ID().IsEqual(*restored.DriverID()))
}

func (suite *RideRepositoryIntegrationTestSuite) TestUpdate_CompletedRide_PersistsFinalFare() {
	ctx := context.Background()

	testRide := suite.createTestRide()
	suite.allowTracking()
	suite.Require().NoError(suite.repository.Add(ctx, testRide))

	driver := suite.createTestDriver()
	now := time.Now().UTC()
	_, err := testRide.Accept(driver, now)
	suite.Require().NoError(err)
	_, err = testRide.Start(now.Add(3 * time.Minute))
	suite.Require().NoError(err)

	finalFare, err := kernel.NewMoney(14.25, "GEL")
	suite.Require().NoError(err)
	_, err = testRide.Complete(finalFare, now.Add(20*time.Minute))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, testRide))

	restored, err := suite.repository.Get(ctx, testRide.ID())
	suite.Require().NoError(err)
	suite.Equal(ride.StatusCompleted, restored.Status())
	suite.Require().NotNil(restored.FinalFare())
	suite.Equal(int64(1425), restored.FinalFare().AmountInMinorUnits())
	suite.NotNil(restored.StartedAt())
	suite.NotNil(restored.CompletedAt())
}

func (suite *RideRepositoryIntegrationTestSuite) TestGetAllInCreatedStatus_ReturnsOnlyWaitingRides() {
	ctx := context.Background()
	suite.allowTracking()

	waiting := suite.createTestRide()
	suite.Require().NoError(suite.repository.Add(ctx, waiting))

	accepted := suite.createTestRide()
	_, err := accepted.Accept(suite.createTestDriver(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, accepted))

	result, err := suite.repository.GetAllInCreatedStatus(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(waiting.ID().IsEqual(result[0].ID()))
}

func (suite *RideRepositoryIntegrationTestSuite) TestGetAllActiveByDriver_ReturnsOnlyActiveRides() {
	ctx := context.Background()
	suite.allowTracking()

	driver := suite.createTestDriver()
	now := time.Now().UTC()

	active := suite.createTestRide()
	_, err := active.Accept(driver, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, active))

	finished := suite.createTestRide()
	_, err = finished.Accept(driver, now)
	suite.Require().NoError(err)
	_, err = finished.Start(now)
	suite.Require().NoError(err)
	finalFare, err := kernel.NewMoney(9.50, "GEL")
	suite.Require().NoError(err)
	_, err = finished.Complete(finalFare, now.Add(15*time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, finished))

	otherDriverRide := suite.createTestRide()
	_, err = otherDriverRide.Accept(suite.createTestDriver(), now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, otherDriverRide))

	result, err := suite.repository.GetAllActiveByDriver(ctx, driver.ID())
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(active.ID().IsEqual(result[0].ID()))
}

func (suite *RideRepositoryIntegrationTestSuite) createTestRide() *ride.RideOrder {
	pickupLocation, err := kernel.NewLocation(41.7151, 44.8271)
	suite.Require().NoError(err)
	pickup, err := kernel.NewAddress("36 Rustaveli Avenue", "Tbilisi", "0108", pickupLocation)
	suite.Require().NoError(err)

	destinationLocation, err := kernel.NewLocation(41.7325, 44.7626)
	suite.Require().NoError(err)
	destination, err := kernel.NewAddress("10 Chavchavadze Avenue", "Tbilisi", "0179", destinationLocation)
	suite.Require().NoError(err)

	fare, err := kernel.NewMoney(12.50, "GEL")
	suite.Require().NoError(err)

	testRide, _, err := ride.NewRideOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		pickup,
		destination,
		fare,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)

	return testRide
}

func (suite *RideRepositoryIntegrationTestSuite) createTestDriver() *user.Driver {
	driver, err := user.NewDriver(
		kernel.NewUUID(),
		"Giorgi Beridze",
		"giorgi"+kernel.NewUUID().String()[:8]+"@example.com",
		"+995555123456",
		"DL-123456",
		"Toyota Prius",
		"TB-001-AB",
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return driver
}

func (suite *RideRepositoryIntegrationTestSuite) allowTracking() {
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
}

func (suite *RideRepositoryIntegrationTestSuite) assertRideCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&riderepo.RideDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestRideRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RideRepositoryIntegrationTestSuite))
}
