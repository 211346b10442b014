package userrepo_test

import (
	"context"
	"testing"
	"time"

	"ridehail/internal/adapters/out/postgres/userrepo"
	"ridehail/internal/core/domain/model/kernel"
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

// UserRepositoryIntegrationTestSuite provides integration tests for the driver
// and passenger repositories using PostgreSQL containers.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container     *postgres.PostgresContainer
	db            *gorm.DB
	driverRepo    *userrepo.GormDriverRepository
	passengerRepo *userrepo.GormPassengerRepository
	tracker       *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&userrepo.DriverDTO{},
		&userrepo.DriverCompletedRideDTO{},
		&userrepo.PassengerDTO{},
		&userrepo.PassengerRideDTO{},
	))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE passengers CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.driverRepo = userrepo.NewGormDriverRepository(suite.db, suite.tracker)
	suite.passengerRepo = userrepo.NewGormPassengerRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestDriverAdd_ValidDriver_RoundTrip() {
	ctx := context.Background()

	driver := suite.createTestDriver("nino@example.com")
	suite.Require().NoError(suite.driverRepo.Add(ctx, driver))

	restored, err := suite.driverRepo.Get(ctx, driver.ID())
	suite.Require().NoError(err)

	suite.True(driver.ID().IsEqual(restored.ID()))
	suite.Equal("Nino Kapanadze", restored.FullName())
	suite.Equal("nino@example.com", restored.Email())
	suite.Equal("DL-123456", restored.LicenseNumber())
	suite.Equal("Toyota Prius", restored.VehicleModel())
	suite.Equal("TB-001-AB", restored.VehiclePlateNumber())
	suite.True(restored.IsAvailable())
	suite.Nil(restored.Rating())
	suite.Empty(restored.CompletedRideIDs())
}

func (suite *UserRepositoryIntegrationTestSuite) TestDriverAdd_DuplicateEmail_ReturnsError() {
	ctx := context.Background()

	first := suite.createTestDriver("same@example.com")
	suite.Require().NoError(suite.driverRepo.Add(ctx, first))

	second := suite.createTestDriver("same@example.com")
	err := suite.driverRepo.Add(ctx, second)
	suite.Require().Error(err)
}

func (suite *UserRepositoryIntegrationTestSuite) TestDriverGet_NonExistent_ReturnsNotFound() {
	ctx := context.Background()

	result, err := suite.driverRepo.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestDriverGetByEmail_MixedCaseLookup_FindsDriver() {
	ctx := context.Background()

	driver := suite.createTestDriver("luka@example.com")
	suite.Require().NoError(suite.driverRepo.Add(ctx, driver))

	restored, err := suite.driverRepo.GetByEmail(ctx, "Luka@Example.COM")
	suite.Require().NoError(err)
	suite.True(driver.ID().IsEqual(restored.ID()))
}

func (suite *UserRepositoryIntegrationTestSuite) TestDriverUpdate_RatingAndCompletedRides_Persisted() {
	ctx := context.Background()

	driver := suite.createTestDriver("rated@example.com")
	suite.Require().NoError(suite.driverRepo.Add(ctx, driver))

	rating, err := kernel.NewRating(4.5, 2)
	suite.Require().NoError(err)
	suite.Require().NoError(driver.UpdateRating(rating))

	firstRide := kernel.NewUUID()
	secondRide := kernel.NewUUID()
	suite.Require().NoError(driver.AddCompletedRide(firstRide))
	suite.Require().NoError(driver.AddCompletedRide(secondRide))
	driver.SetAvailability(false)

	suite.Require().NoError(suite.driverRepo.Update(ctx, driver))

	restored, err := suite.driverRepo.Get(ctx, driver.ID())
	suite.Require().NoError(err)

	suite.False(restored.IsAvailable())
	suite.Require().NotNil(restored.Rating())
	suite.InDelta(4.5, restored.Rating().Value(), 0.001)
	suite.Equal(2, restored.Rating().TotalReviews())

	completedIDs := restored.CompletedRideIDs()
	suite.Require().Len(completedIDs, 2)
	suite.True(firstRide.IsEqual(completedIDs[0]))
	suite.True(secondRide.IsEqual(completedIDs[1]))
}

func (suite *UserRepositoryIntegrationTestSuite) TestDriverGetAllAvailable_FiltersBusyDrivers() {
	ctx := context.Background()

	available := suite.createTestDriver("free@example.com")
	suite.Require().NoError(suite.driverRepo.Add(ctx, available))

	busy := suite.createTestDriver("busy@example.com")
	busy.SetAvailability(false)
	suite.Require().NoError(suite.driverRepo.Add(ctx, busy))

	result, err := suite.driverRepo.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(available.ID().IsEqual(result[0].ID()))
}

func (suite *UserRepositoryIntegrationTestSuite) TestPassengerAdd_ValidPassenger_RoundTrip() {
	ctx := context.Background()

	passenger := suite.createTestPassenger("mariam@example.com")
	suite.Require().NoError(suite.passengerRepo.Add(ctx, passenger))

	restored, err := suite.passengerRepo.Get(ctx, passenger.ID())
	suite.Require().NoError(err)

	suite.True(passenger.ID().IsEqual(restored.ID()))
	suite.Equal("Mariam Tsiklauri", restored.FullName())
	suite.Equal("mariam@example.com", restored.Email())
	suite.Equal("card", restored.PreferredPaymentMethod())
	suite.Nil(restored.Rating())
	suite.Empty(restored.RideHistoryIDs())
}

func (suite *UserRepositoryIntegrationTestSuite) TestPassengerUpdate_RideHistory_PreservesOrder() {
	ctx := context.Background()

	passenger := suite.createTestPassenger("history@example.com")
	suite.Require().NoError(suite.passengerRepo.Add(ctx, passenger))

	rideIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
	for _, rideID := range rideIDs {
		suite.Require().NoError(passenger.AddRideToHistory(rideID))
	}

	suite.Require().NoError(suite.passengerRepo.Update(ctx, passenger))

	restored, err := suite.passengerRepo.Get(ctx, passenger.ID())
	suite.Require().NoError(err)

	history := restored.RideHistoryIDs()
	suite.Require().Len(history, len(rideIDs))
	for i, rideID := range rideIDs {
		suite.True(rideID.IsEqual(history[i]))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestPassengerGet_NonExistent_ReturnsNotFound() {
	ctx := context.Background()

	result, err := suite.passengerRepo.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) createTestDriver(email string) *user.Driver {
	driver, err := user.NewDriver(
		kernel.NewUUID(),
		"Nino Kapanadze",
		email,
		"+995555123456",
		"DL-123456",
		"Toyota Prius",
		"TB-001-AB",
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return driver
}

func (suite *UserRepositoryIntegrationTestSuite) createTestPassenger(email string) *user.Passenger {
	passenger, err := user.NewPassenger(
		kernel.NewUUID(),
		"Mariam Tsiklauri",
		email,
		"+995555654321",
		"card",
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return passenger
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
