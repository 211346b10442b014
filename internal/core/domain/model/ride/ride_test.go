package ride

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/user"
)

func testAddress(t *testing.T, latitude, longitude float64) kernel.Address {
	t.Helper()

	location, err := kernel.NewLocation(latitude, longitude)
	require.NoError(t, err)

	address, err := kernel.NewAddress("Rustaveli Ave 12", "Tbilisi", "0108", location)
	require.NoError(t, err)
	return address
}

func testFare(t *testing.T, amount float64) kernel.Money {
	t.Helper()

	fare, err := kernel.NewMoney(amount, "GEL")
	require.NoError(t, err)
	return fare
}

func testDriver(t *testing.T) *user.Driver {
	t.Helper()

	driver, err := user.NewDriver(kernel.NewUUID(), "Giorgi Beridze",
		"giorgi@example.com", "+995555123456", "DL-44821",
		"Toyota Prius", "AB-123-CD", time.Now())
	require.NoError(t, err)
	return driver
}

func newTestRide(t *testing.T) *RideOrder {
	t.Helper()

	order, event, err := NewRideOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		testAddress(t, 41.6938, 44.8015),
		testAddress(t, 41.7167, 44.7833),
		testFare(t, 9.50),
		time.Now(),
	)
	require.NoError(t, err)
	require.Equal(t, "RideCreated", event.EventName())
	return order
}

func acceptedTestRide(t *testing.T) (*RideOrder, *user.Driver) {
	t.Helper()

	order := newTestRide(t)
	driver := testDriver(t)
	_, err := order.Accept(driver, time.Now())
	require.NoError(t, err)
	return order, driver
}

func inProgressTestRide(t *testing.T) (*RideOrder, *user.Driver) {
	t.Helper()

	order, driver := acceptedTestRide(t)
	_, err := order.Start(time.Now())
	require.NoError(t, err)
	return order, driver
}

func TestNewRideOrder(t *testing.T) {
	t.Run("creates ride in Created status", func(t *testing.T) {
		now := time.Now()
		passengerID := kernel.NewUUID()

		order, event, err := NewRideOrder(kernel.NewUUID(), passengerID,
			testAddress(t, 41.6938, 44.8015), testAddress(t, 41.7167, 44.7833),
			testFare(t, 9.50), now)
		require.NoError(t, err)

		assert.Equal(t, StatusCreated, order.Status())
		assert.True(t, order.PassengerID().IsEqual(passengerID))
		assert.Nil(t, order.DriverID())
		assert.Nil(t, order.FinalFare())
		assert.Equal(t, now, order.CreatedAt())
		assert.EqualValues(t, 0, order.Version())

		assert.True(t, event.RideID().IsEqual(order.ID()))
		assert.True(t, event.PassengerID.IsEqual(passengerID))
		assert.Equal(t, now, event.OccurredAt())
	})

	t.Run("fails with empty passenger", func(t *testing.T) {
		_, _, err := NewRideOrder(kernel.NewUUID(), kernel.UUID{},
			testAddress(t, 41.6938, 44.8015), testAddress(t, 41.7167, 44.7833),
			testFare(t, 9.50), time.Now())

		require.Error(t, err)
	})

	t.Run("fails with unconstructed addresses or fare", func(t *testing.T) {
		_, _, err := NewRideOrder(kernel.NewUUID(), kernel.NewUUID(),
			kernel.Address{}, testAddress(t, 41.7167, 44.7833),
			testFare(t, 9.50), time.Now())
		assert.Error(t, err)

		_, _, err = NewRideOrder(kernel.NewUUID(), kernel.NewUUID(),
			testAddress(t, 41.6938, 44.8015), testAddress(t, 41.7167, 44.7833),
			kernel.Money{}, time.Now())
		assert.Error(t, err)
	})
}

func TestRideOrder_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var order RideOrder
		assert.ErrorIs(t, order.Validate(), ErrRideOrderIsNotConstructed)
	})

	t.Run("nil is invalid", func(t *testing.T) {
		var order *RideOrder
		assert.ErrorIs(t, order.Validate(), ErrRideOrderIsNotConstructed)
	})

	t.Run("constructed ride is valid", func(t *testing.T) {
		assert.NoError(t, newTestRide(t).Validate())
	})
}

func TestRideOrder_Accept(t *testing.T) {
	t.Run("assigns available driver", func(t *testing.T) {
		order := newTestRide(t)
		driver := testDriver(t)
		now := time.Now()

		event, err := order.Accept(driver, now)
		require.NoError(t, err)

		assert.Equal(t, StatusAccepted, order.Status())
		require.NotNil(t, order.DriverID())
		assert.True(t, order.DriverID().IsEqual(driver.ID()))
		require.NotNil(t, order.AcceptedAt())
		assert.Equal(t, now, *order.AcceptedAt())
		assert.True(t, event.DriverID.IsEqual(driver.ID()))
	})

	t.Run("fails with unavailable driver and leaves ride unchanged", func(t *testing.T) {
		order := newTestRide(t)
		driver := testDriver(t)
		driver.SetAvailability(false)

		_, err := order.Accept(driver, time.Now())

		require.ErrorIs(t, err, ErrDriverNotAvailable)
		assert.EqualError(t, err, "Driver is not available")
		assert.Equal(t, StatusCreated, order.Status())
		assert.Nil(t, order.DriverID())
	})

	t.Run("fails with nil driver", func(t *testing.T) {
		order := newTestRide(t)
		_, err := order.Accept(nil, time.Now())
		assert.ErrorIs(t, err, ErrDriverIsRequired)
	})

	t.Run("fails when ride is not Created", func(t *testing.T) {
		order, _ := acceptedTestRide(t)
		_, err := order.Accept(testDriver(t), time.Now())
		assert.Error(t, err)
	})
}

func TestRideOrder_Reject(t *testing.T) {
	t.Run("records rejecting driver and reason", func(t *testing.T) {
		order := newTestRide(t)
		driver := testDriver(t)

		require.NoError(t, order.Reject(driver, "  too far from pickup "))

		assert.Equal(t, StatusRejected, order.Status())
		require.NotNil(t, order.DriverID())
		assert.True(t, order.DriverID().IsEqual(driver.ID()))
		assert.Equal(t, "too far from pickup", order.RejectionReason())
	})

	t.Run("fails when ride is not Created", func(t *testing.T) {
		order, _ := acceptedTestRide(t)
		assert.Error(t, order.Reject(testDriver(t), "busy"))
	})
}

func TestRideOrder_StartArriving(t *testing.T) {
	t.Run("moves accepted ride to DriverArriving", func(t *testing.T) {
		order, _ := acceptedTestRide(t)

		require.NoError(t, order.StartArriving())
		assert.Equal(t, StatusDriverArriving, order.Status())
	})

	t.Run("fails from Created", func(t *testing.T) {
		order := newTestRide(t)
		assert.Error(t, order.StartArriving())
	})
}

func TestRideOrder_Start(t *testing.T) {
	t.Run("starts from Accepted", func(t *testing.T) {
		order, _ := acceptedTestRide(t)
		now := time.Now()

		event, err := order.Start(now)
		require.NoError(t, err)

		assert.Equal(t, StatusInProgress, order.Status())
		require.NotNil(t, order.StartedAt())
		assert.Equal(t, now, *order.StartedAt())
		assert.Equal(t, "RideStarted", event.EventName())
	})

	t.Run("starts from DriverArriving", func(t *testing.T) {
		order, _ := acceptedTestRide(t)
		require.NoError(t, order.StartArriving())

		_, err := order.Start(time.Now())
		require.NoError(t, err)
		assert.Equal(t, StatusInProgress, order.Status())
	})

	t.Run("fails without a driver", func(t *testing.T) {
		order := newTestRide(t)
		_, err := order.Start(time.Now())
		assert.Error(t, err)
	})
}

func TestRideOrder_Complete(t *testing.T) {
	t.Run("completes in-progress ride with final fare", func(t *testing.T) {
		order, driver := inProgressTestRide(t)
		finalFare := testFare(t, 12.25)
		now := time.Now()

		event, err := order.Complete(finalFare, now)
		require.NoError(t, err)

		assert.Equal(t, StatusCompleted, order.Status())
		require.NotNil(t, order.FinalFare())
		equal, err := order.FinalFare().IsEqual(finalFare)
		require.NoError(t, err)
		assert.True(t, equal)
		require.NotNil(t, order.CompletedAt())
		assert.Equal(t, now, *order.CompletedAt())
		assert.True(t, event.DriverID.IsEqual(driver.ID()))
	})

	t.Run("fails from Accepted", func(t *testing.T) {
		order, _ := acceptedTestRide(t)
		_, err := order.Complete(testFare(t, 12.25), time.Now())
		assert.Error(t, err)
		assert.Nil(t, order.FinalFare())
	})

	t.Run("fails with unconstructed fare", func(t *testing.T) {
		order, _ := inProgressTestRide(t)
		_, err := order.Complete(kernel.Money{}, time.Now())
		assert.Error(t, err)
	})
}

func TestRideOrder_Cancel(t *testing.T) {
	t.Run("cancels from Created", func(t *testing.T) {
		order := newTestRide(t)
		cancelledBy := order.PassengerID()
		now := time.Now()

		event, err := order.Cancel(cancelledBy, "changed my mind", now)
		require.NoError(t, err)

		assert.Equal(t, StatusCancelled, order.Status())
		require.NotNil(t, order.CancelledAt())
		assert.Equal(t, now, *order.CancelledAt())
		assert.Equal(t, "changed my mind", order.CancellationReason())
		require.NotNil(t, order.CancelledBy())
		assert.True(t, order.CancelledBy().IsEqual(cancelledBy))
		assert.True(t, event.CancelledBy.IsEqual(cancelledBy))
		assert.Equal(t, "changed my mind", event.Reason)
	})

	t.Run("cancels from Accepted and DriverArriving", func(t *testing.T) {
		order, _ := acceptedTestRide(t)
		_, err := order.Cancel(order.PassengerID(), "", time.Now())
		require.NoError(t, err)

		order, _ = acceptedTestRide(t)
		require.NoError(t, order.StartArriving())
		_, err = order.Cancel(order.PassengerID(), "", time.Now())
		require.NoError(t, err)
	})

	t.Run("cancels from Rejected", func(t *testing.T) {
		order := newTestRide(t)
		require.NoError(t, order.Reject(testDriver(t), "busy"))

		_, err := order.Cancel(order.PassengerID(), "no drivers", time.Now())
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, order.Status())
	})

	t.Run("fails from InProgress", func(t *testing.T) {
		order, _ := inProgressTestRide(t)

		_, err := order.Cancel(order.PassengerID(), "late", time.Now())

		require.ErrorIs(t, err, ErrCancelRideInProgress)
		assert.EqualError(t, err, "Cannot cancel a ride in progress")
		assert.Equal(t, StatusInProgress, order.Status())
		assert.Nil(t, order.CancelledAt())
	})

	t.Run("fails from final states", func(t *testing.T) {
		order, _ := inProgressTestRide(t)
		_, err := order.Complete(testFare(t, 12.25), time.Now())
		require.NoError(t, err)

		_, err = order.Cancel(order.PassengerID(), "", time.Now())
		require.ErrorIs(t, err, ErrCancelFinalizedRide)
		assert.EqualError(t, err, "Cannot cancel a completed or already cancelled ride")

		order = newTestRide(t)
		_, err = order.Cancel(order.PassengerID(), "", time.Now())
		require.NoError(t, err)
		_, err = order.Cancel(order.PassengerID(), "", time.Now())
		assert.ErrorIs(t, err, ErrCancelFinalizedRide)
	})
}

func TestRideOrder_UpdateEstimatedFare(t *testing.T) {
	t.Run("updates estimate before acceptance", func(t *testing.T) {
		order := newTestRide(t)
		newEstimate := testFare(t, 11.00)

		require.NoError(t, order.UpdateEstimatedFare(newEstimate))

		equal, err := order.EstimatedFare().IsEqual(newEstimate)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("fails after acceptance", func(t *testing.T) {
		order, _ := acceptedTestRide(t)
		assert.Error(t, order.UpdateEstimatedFare(testFare(t, 11.00)))
	})
}

func TestRestoreRideOrder(t *testing.T) {
	t.Run("round-trips a completed ride", func(t *testing.T) {
		original, _ := inProgressTestRide(t)
		finalFare := testFare(t, 12.25)
		_, err := original.Complete(finalFare, time.Now())
		require.NoError(t, err)

		restored, err := RestoreRideOrder(
			original.ID(),
			original.PassengerID(),
			original.DriverID(),
			original.Pickup(),
			original.Destination(),
			original.EstimatedFare(),
			original.FinalFare(),
			original.Status(),
			original.CreatedAt(),
			original.AcceptedAt(),
			original.StartedAt(),
			original.CompletedAt(),
			original.CancelledAt(),
			original.RejectionReason(),
			original.CancellationReason(),
			original.CancelledBy(),
			3,
		)
		require.NoError(t, err)

		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, StatusCompleted, restored.Status())
		require.NotNil(t, restored.DriverID())
		assert.True(t, restored.DriverID().IsEqual(*original.DriverID()))
		require.NotNil(t, restored.FinalFare())
		assert.EqualValues(t, 3, restored.Version())
	})

	t.Run("restored ride enforces transitions", func(t *testing.T) {
		original, _ := acceptedTestRide(t)

		restored, err := RestoreRideOrder(
			original.ID(), original.PassengerID(), original.DriverID(),
			original.Pickup(), original.Destination(), original.EstimatedFare(),
			nil, StatusAccepted, original.CreatedAt(), original.AcceptedAt(),
			nil, nil, nil, "", "", nil, 1)
		require.NoError(t, err)

		_, err = restored.Start(time.Now())
		require.NoError(t, err)
		assert.Equal(t, StatusInProgress, restored.Status())
	})

	t.Run("fails with invalid status", func(t *testing.T) {
		original := newTestRide(t)

		_, err := RestoreRideOrder(
			original.ID(), original.PassengerID(), nil,
			original.Pickup(), original.Destination(), original.EstimatedFare(),
			nil, StatusUnknown, original.CreatedAt(),
			nil, nil, nil, nil, "", "", nil, 0)

		assert.Error(t, err)
	})
}
