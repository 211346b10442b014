package postgres_test

import (
	"context"
	"testing"
	"time"

	"ridehail/internal/adapters/out/postgres"
	"ridehail/internal/adapters/out/postgres/riderepo"
	"ridehail/internal/adapters/out/postgres/userrepo"
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/ride"
	"ridehail/internal/core/domain/model/user"
	"ridehail/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries across the
// ride and user repositories using a PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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
		&riderepo.RideDTO{},
		&userrepo.DriverDTO{},
		&userrepo.DriverCompletedRideDTO{},
		&userrepo.PassengerDTO{},
		&userrepo.PassengerRideDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE rides, drivers, passengers CASCADE").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testRide := suite.createTestRide()
	suite.Require().NoError(uow.RideRepository().Add(ctx, testRide))
	suite.Require().NoError(uow.Commit(ctx))

	verifyUow := suite.factory.Create()
	restored, err := verifyUow.RideRepository().Get(ctx, testRide.ID())
	suite.Require().NoError(err)
	suite.True(testRide.ID().IsEqual(restored.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testRide := suite.createTestRide()
	suite.Require().NoError(uow.RideRepository().Add(ctx, testRide))
	suite.Require().NoError(uow.Rollback(ctx))

	verifyUow := suite.factory.Create()
	_, err := verifyUow.RideRepository().Get(ctx, testRide.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Rollback(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMultiRepository_AtomicAcceptFlow() {
	ctx := context.Background()

	// Seed a ride and a driver in separate committed transactions
	seedUow := suite.factory.Create()
	suite.Require().NoError(seedUow.Begin(ctx))

	testRide := suite.createTestRide()
	suite.Require().NoError(seedUow.RideRepository().Add(ctx, testRide))

	driver := suite.createTestDriver()
	suite.Require().NoError(seedUow.DriverRepository().Add(ctx, driver))
	suite.Require().NoError(seedUow.Commit(ctx))

	// Accept the ride and flip driver availability in one transaction
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loadedRide, err := uow.RideRepository().Get(ctx, testRide.ID())
	suite.Require().NoError(err)
	loadedDriver, err := uow.DriverRepository().Get(ctx, driver.ID())
	suite.Require().NoError(err)

	_, err = loadedRide.Accept(loadedDriver, time.Now().UTC())
	suite.Require().NoError(err)
	loadedDriver.SetAvailability(false)

	suite.Require().NoError(uow.RideRepository().Update(ctx, loadedRide))
	suite.Require().NoError(uow.DriverRepository().Update(ctx, loadedDriver))
	suite.Require().NoError(uow.Commit(ctx))

	verifyUow := suite.factory.Create()
	restoredRide, err := verifyUow.RideRepository().Get(ctx, testRide.ID())
	suite.Require().NoError(err)
	suite.Equal(ride.StatusAccepted, restoredRide.Status())

	restoredDriver, err := verifyUow.DriverRepository().Get(ctx, driver.ID())
	suite.Require().NoError(err)
	suite.False(restoredDriver.IsAvailable())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestRide() *ride.RideOrder {
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

func (suite *UnitOfWorkIntegrationTestSuite) createTestDriver() *user.Driver {
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

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
