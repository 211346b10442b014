package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/ride"
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
		"Toyota Prius", "AB-123-CD", fixedTime.Add(-time.Hour))
	require.NoError(t, err)
	return driver
}

func testPassenger(t *testing.T) *user.Passenger {
	t.Helper()

	passenger, err := user.NewPassenger(kernel.NewUUID(), "Ana Lomidze",
		"ana@example.com", "+995577112233", "card", fixedTime.Add(-time.Hour))
	require.NoError(t, err)
	return passenger
}

func createdRide(t *testing.T, createdAt time.Time) *ride.RideOrder {
	t.Helper()

	order, _, err := ride.NewRideOrder(kernel.NewUUID(), kernel.NewUUID(),
		testAddress(t, 41.6938, 44.8015), testAddress(t, 41.7167, 44.7833),
		testFare(t, 9.50), createdAt)
	require.NoError(t, err)
	return order
}

func acceptedRide(t *testing.T, driver *user.Driver) *ride.RideOrder {
	t.Helper()

	order := createdRide(t, fixedTime.Add(-30*time.Minute))
	_, err := order.Accept(driver, fixedTime.Add(-25*time.Minute))
	require.NoError(t, err)
	return order
}

func inProgressRide(t *testing.T, driver *user.Driver) *ride.RideOrder {
	t.Helper()

	order := acceptedRide(t, driver)
	_, err := order.Start(fixedTime.Add(-20 * time.Minute))
	require.NoError(t, err)
	return order
}

func completedRide(t *testing.T, driver *user.Driver) *ride.RideOrder {
	t.Helper()

	order := inProgressRide(t, driver)
	_, err := order.Complete(testFare(t, 12.25), fixedTime.Add(-5*time.Minute))
	require.NoError(t, err)
	return order
}
