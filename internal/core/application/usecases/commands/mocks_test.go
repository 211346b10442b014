package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ridehail/internal/core/application/usecases/commands"
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/review"
	"ridehail/internal/core/domain/model/ride"
	"ridehail/internal/core/domain/model/user"
	"ridehail/internal/core/ports"
)

// fixedTime keeps handler clocks deterministic across the handler tests.
var fixedTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() ports.Clock {
	return ports.ClockFunc(func() time.Time { return fixedTime })
}

type MockRideRepository struct{ mock.Mock }

func (m *MockRideRepository) Add(ctx context.Context, aggregate *ride.RideOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRideRepository) Update(ctx context.Context, aggregate *ride.RideOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRideRepository) Get(ctx context.Context, id kernel.UUID) (*ride.RideOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ride.RideOrder), args.Error(1)
}

func (m *MockRideRepository) GetAllInCreatedStatus(ctx context.Context) ([]*ride.RideOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ride.RideOrder), args.Error(1)
}

func (m *MockRideRepository) GetAllActiveByDriver(
	ctx context.Context, driverID kernel.UUID,
) ([]*ride.RideOrder, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ride.RideOrder), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, aggregate *user.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, aggregate *user.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*user.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetByEmail(ctx context.Context, email string) (*user.Driver, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllAvailable(ctx context.Context) ([]*user.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.Driver), args.Error(1)
}

type MockPassengerRepository struct{ mock.Mock }

func (m *MockPassengerRepository) Add(ctx context.Context, aggregate *user.Passenger) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPassengerRepository) Update(ctx context.Context, aggregate *user.Passenger) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPassengerRepository) Get(ctx context.Context, id kernel.UUID) (*user.Passenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) GetByEmail(ctx context.Context, email string) (*user.Passenger, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Passenger), args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByRideID(ctx context.Context, rideID kernel.UUID) (*review.Review, error) {
	args := m.Called(ctx, rideID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByDriverAndPassenger(
	ctx context.Context, driverID, passengerID kernel.UUID,
) (*review.Review, error) {
	args := m.Called(ctx, driverID, passengerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *MockReviewRepository) GetAllByDriver(
	ctx context.Context, driverID kernel.UUID,
) ([]*review.Review, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*review.Review), args.Error(1)
}

// MockUoW satisfies every unit of work interface the handlers depend on.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) RideRepository() ports.RideRepository {
	args := m.Called()
	return args.Get(0).(ports.RideRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) PassengerRepository() ports.PassengerRepository {
	args := m.Called()
	return args.Get(0).(ports.PassengerRepository)
}

func (m *MockUoW) ReviewRepository() ports.ReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.ReviewRepository)
}

type MockRideUoWFactory struct{ mock.Mock }

func (m *MockRideUoWFactory) Create() commands.RideUoW {
	args := m.Called()
	return args.Get(0).(commands.RideUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockPassengerUoWFactory struct{ mock.Mock }

func (m *MockPassengerUoWFactory) Create() commands.PassengerUoW {
	args := m.Called()
	return args.Get(0).(commands.PassengerUoW)
}

type MockRideDriverUoWFactory struct{ mock.Mock }

func (m *MockRideDriverUoWFactory) Create() commands.RideDriverUoW {
	args := m.Called()
	return args.Get(0).(commands.RideDriverUoW)
}

type MockRidePassengerUoWFactory struct{ mock.Mock }

func (m *MockRidePassengerUoWFactory) Create() commands.RidePassengerUoW {
	args := m.Called()
	return args.Get(0).(commands.RidePassengerUoW)
}

type MockRideDriverPassengerUoWFactory struct{ mock.Mock }

func (m *MockRideDriverPassengerUoWFactory) Create() commands.RideDriverPassengerUoW {
	args := m.Called()
	return args.Get(0).(commands.RideDriverPassengerUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRideEventPublisher struct{ mock.Mock }

func (m *MockRideEventPublisher) Publish(ctx context.Context, event ride.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
