// Package queue provides the RabbitMQ implementation of the ride event
// publisher. Events are published to a topic exchange so consumers can bind
// to exactly the lifecycle transitions they care about.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ridehail/internal/core/domain/model/ride"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangeName is the topic exchange all ride lifecycle events go to.
const ExchangeName = "ride_events"

// amqpChannel is the subset of *amqp.Channel the publisher needs.
type amqpChannel interface {
	PublishWithContext(
		ctx context.Context,
		exchange string,
		key string,
		mandatory bool,
		immediate bool,
		msg amqp.Publishing,
	) error
}

// RideEventPublisher publishes ride lifecycle events to RabbitMQ.
// Routing keys follow the pattern "ride.<transition>.<ride_id>", e.g.
// "ride.accepted.550e8400-e29b-41d4-a716-446655440000", so a consumer can
// subscribe to "ride.accepted.*" or to everything about one ride.
type RideEventPublisher struct {
	channel amqpChannel
	logger  *slog.Logger
}

// NewRideEventPublisher creates a publisher over an open AMQP channel.
// The exchange must already be declared; use Connect for that.
func NewRideEventPublisher(channel amqpChannel, logger *slog.Logger) *RideEventPublisher {
	return &RideEventPublisher{channel: channel, logger: logger}
}

// Publish sends a single ride event as a JSON message.
func (p *RideEventPublisher) Publish(ctx context.Context, event ride.Event) error {
	body, err := json.Marshal(payloadFor(event))
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	key := routingKey(event)
	if err := p.channel.PublishWithContext(ctx,
		ExchangeName,
		key,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		},
	); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	p.logger.InfoContext(ctx, "ride event published",
		"event", event.EventName(),
		"ride_id", event.RideID().String(),
		"routing_key", key,
	)
	return nil
}

// routingKey derives the topic routing key from the event name.
func routingKey(event ride.Event) string {
	transition := strings.ToLower(strings.TrimPrefix(event.EventName(), "Ride"))
	return fmt.Sprintf("ride.%s.%s", transition, event.RideID().String())
}

// payloadFor builds the wire representation of an event. Every payload carries
// the event name, ride ID, and timestamp; transition-specific fields are added
// per event type.
func payloadFor(event ride.Event) map[string]any {
	payload := map[string]any{
		"event":       event.EventName(),
		"ride_id":     event.RideID().String(),
		"occurred_at": event.OccurredAt().UTC().Format(time.RFC3339),
	}

	switch e := event.(type) {
	case ride.CreatedEvent:
		payload["passenger_id"] = e.PassengerID.String()
	case ride.AcceptedEvent:
		payload["driver_id"] = e.DriverID.String()
	case ride.CompletedEvent:
		payload["driver_id"] = e.DriverID.String()
		payload["final_fare"] = e.FinalFare.Amount()
		payload["currency"] = e.FinalFare.Currency()
	case ride.CancelledEvent:
		payload["cancelled_by"] = e.CancelledBy.String()
		payload["reason"] = e.Reason
	}

	return payload
}
