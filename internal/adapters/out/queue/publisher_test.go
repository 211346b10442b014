package queue

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/ride"
	"ridehail/internal/core/domain/model/user"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedPublish struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	published []capturedPublish
	err       error
}

func (f *fakeChannel) PublishWithContext(
	_ context.Context,
	exchange string,
	key string,
	_ bool,
	_ bool,
	msg amqp.Publishing,
) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, capturedPublish{exchange: exchange, key: key, msg: msg})
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRide(t *testing.T) (*ride.RideOrder, ride.CreatedEvent) {
	t.Helper()

	pickupLocation, err := kernel.NewLocation(41.7151, 44.8271)
	require.NoError(t, err)
	pickup, err := kernel.NewAddress("36 Rustaveli Avenue", "Tbilisi", "0108", pickupLocation)
	require.NoError(t, err)

	destinationLocation, err := kernel.NewLocation(41.7325, 44.7626)
	require.NoError(t, err)
	destination, err := kernel.NewAddress("10 Chavchavadze Avenue", "Tbilisi", "0179", destinationLocation)
	require.NoError(t, err)

	fare, err := kernel.NewMoney(12.50, "GEL")
	require.NoError(t, err)

	order, event, err := ride.NewRideOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		pickup,
		destination,
		fare,
		time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return order, event
}

func newTestDriver(t *testing.T) *user.Driver {
	t.Helper()

	driver, err := user.NewDriver(
		kernel.NewUUID(),
		"Giorgi Beridze",
		"giorgi@example.com",
		"+995555123456",
		"DL-123456",
		"Toyota Prius",
		"TB-001-AB",
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return driver
}

func TestPublish_CreatedEvent_RoutingKeyAndPayload(t *testing.T) {
	channel := &fakeChannel{}
	publisher := NewRideEventPublisher(channel, testLogger())

	order, event := newTestRide(t)

	require.NoError(t, publisher.Publish(t.Context(), event))

	require.Len(t, channel.published, 1)
	published := channel.published[0]
	assert.Equal(t, ExchangeName, published.exchange)
	assert.Equal(t, "ride.created."+order.ID().String(), published.key)
	assert.Equal(t, "application/json", published.msg.ContentType)
	assert.Equal(t, uint8(amqp.Persistent), published.msg.DeliveryMode)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(published.msg.Body, &payload))
	assert.Equal(t, "RideCreated", payload["event"])
	assert.Equal(t, order.ID().String(), payload["ride_id"])
	assert.Equal(t, order.PassengerID().String(), payload["passenger_id"])
	assert.Equal(t, "2025-06-15T12:00:00Z", payload["occurred_at"])
}

func TestPublish_CompletedEvent_IncludesFareDetails(t *testing.T) {
	channel := &fakeChannel{}
	publisher := NewRideEventPublisher(channel, testLogger())

	order, _ := newTestRide(t)
	driver := newTestDriver(t)

	now := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)
	_, err := order.Accept(driver, now)
	require.NoError(t, err)
	_, err = order.Start(now.Add(2 * time.Minute))
	require.NoError(t, err)

	finalFare, err := kernel.NewMoney(14.25, "GEL")
	require.NoError(t, err)
	event, err := order.Complete(finalFare, now.Add(20*time.Minute))
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(t.Context(), event))

	require.Len(t, channel.published, 1)
	published := channel.published[0]
	assert.Equal(t, "ride.completed."+order.ID().String(), published.key)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(published.msg.Body, &payload))
	assert.Equal(t, "RideCompleted", payload["event"])
	assert.Equal(t, driver.ID().String(), payload["driver_id"])
	assert.InDelta(t, 14.25, payload["final_fare"].(float64), 0.001)
	assert.Equal(t, "GEL", payload["currency"])
}

func TestPublish_CancelledEvent_IncludesReason(t *testing.T) {
	channel := &fakeChannel{}
	publisher := NewRideEventPublisher(channel, testLogger())

	order, _ := newTestRide(t)
	cancelledBy := order.PassengerID()
	event, err := order.Cancel(cancelledBy, "changed plans", time.Date(2025, 6, 15, 12, 5, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(t.Context(), event))

	require.Len(t, channel.published, 1)
	assert.Equal(t, "ride.cancelled."+order.ID().String(), channel.published[0].key)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(channel.published[0].msg.Body, &payload))
	assert.Equal(t, cancelledBy.String(), payload["cancelled_by"])
	assert.Equal(t, "changed plans", payload["reason"])
}

func TestPublish_ChannelError_Propagates(t *testing.T) {
	channel := &fakeChannel{err: errors.New("channel closed")}
	publisher := NewRideEventPublisher(channel, testLogger())

	order, _ := newTestRide(t)
	event, err := order.Cancel(order.PassengerID(), "changed plans", time.Now().UTC())
	require.NoError(t, err)

	err = publisher.Publish(t.Context(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish")
}

func TestRoutingKey_AllEventNames(t *testing.T) {
	order, created := newTestRide(t)

	assert.Equal(t, "ride.created."+order.ID().String(), routingKey(created))

	driver := newTestDriver(t)
	now := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)

	accepted, err := order.Accept(driver, now)
	require.NoError(t, err)
	assert.Equal(t, "ride.accepted."+order.ID().String(), routingKey(accepted))

	started, err := order.Start(now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "ride.started."+order.ID().String(), routingKey(started))

	fare, err := kernel.NewMoney(10.0, "GEL")
	require.NoError(t, err)
	completed, err := order.Complete(fare, now.Add(15*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "ride.completed."+order.ID().String(), routingKey(completed))
}
