package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ridehail/internal/core/application/usecases/commands"
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/ride"
)

func TestCancelStaleRidesCommand_Validation(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCancelStaleRidesCommand(10 * time.Minute)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 10*time.Minute, cmd.MaxAge())
	})

	t.Run("non-positive max age fails", func(t *testing.T) {
		_, err := commands.NewCancelStaleRidesCommand(0)
		require.ErrorIs(t, err, commands.ErrMaxAgeIsInvalid)

		_, err = commands.NewCancelStaleRidesCommand(-time.Minute)
		require.ErrorIs(t, err, commands.ErrMaxAgeIsInvalid)
	})
}

func TestCancelStaleRidesCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	stale := createdRide(t, fixedTime.Add(-30*time.Minute))
	fresh := createdRide(t, fixedTime.Add(-2*time.Minute))
	cmd, err := commands.NewCancelStaleRidesCommand(10 * time.Minute)
	require.NoError(t, err)

	rideRepo := new(MockRideRepository)
	uow := new(MockUoW)
	publisher := new(MockRideEventPublisher)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RideRepository").Return(rideRepo).Once()
	rideRepo.On("GetAllInCreatedStatus", mock.Anything).
		Return([]*ride.RideOrder{stale, fresh}, nil).Once()
	rideRepo.On("Update", mock.Anything, stale).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	factory := new(MockRideUoWFactory)
	factory.On("Create").Return(uow).Once()

	systemID := kernel.NewUUID()
	h := commands.NewCancelStaleRidesCommandHandler(factory, publisher, fixedClock(), systemID)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, ride.StatusCancelled, stale.Status())
	require.NotNil(t, stale.CancelledBy())
	assert.True(t, stale.CancelledBy().IsEqual(systemID))
	assert.NotEmpty(t, stale.CancellationReason())

	assert.Equal(t, ride.StatusCreated, fresh.Status())

	publishedEvent := publisher.Calls[0].Arguments.Get(1).(ride.Event)
	assert.Equal(t, "RideCancelled", publishedEvent.EventName())
	assert.True(t, publishedEvent.RideID().IsEqual(stale.ID()))

	rideRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCancelStaleRidesCommandHandler_Handle_NothingToCancel(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelStaleRidesCommand(10 * time.Minute)
	require.NoError(t, err)

	rideRepo := new(MockRideRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RideRepository").Return(rideRepo).Once()
	rideRepo.On("GetAllInCreatedStatus", mock.Anything).Return([]*ride.RideOrder{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRideUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStaleRidesCommandHandler(
		factory, new(MockRideEventPublisher), fixedClock(), kernel.NewUUID())
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}
