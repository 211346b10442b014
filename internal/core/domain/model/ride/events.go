package ride

import (
	"time"

	"ridehail/internal/core/domain/model/kernel"
)

// Event is a record of a successful ride order state transition, returned
// alongside the mutation result for the benefit of external consumers such as
// notification systems. Event emission is a side channel: the state machine is
// correct whether or not events are delivered anywhere.
type Event interface {
	// EventName returns the stable name of the event type.
	EventName() string
	// RideID returns the identifier of the ride order the event belongs to.
	RideID() kernel.UUID
	// OccurredAt returns when the transition happened.
	OccurredAt() time.Time
}

type baseEvent struct {
	rideID     kernel.UUID
	occurredAt time.Time
}

func (e baseEvent) RideID() kernel.UUID   { return e.rideID }
func (e baseEvent) OccurredAt() time.Time { return e.occurredAt }

// CreatedEvent is emitted when a ride order is created.
type CreatedEvent struct {
	baseEvent
	PassengerID kernel.UUID
}

// EventName returns "RideCreated".
func (CreatedEvent) EventName() string { return "RideCreated" }

// AcceptedEvent is emitted when a driver accepts a ride order.
type AcceptedEvent struct {
	baseEvent
	DriverID kernel.UUID
}

// EventName returns "RideAccepted".
func (AcceptedEvent) EventName() string { return "RideAccepted" }

// StartedEvent is emitted when a ride starts.
type StartedEvent struct {
	baseEvent
}

// EventName returns "RideStarted".
func (StartedEvent) EventName() string { return "RideStarted" }

// CompletedEvent is emitted when a ride completes with a final fare.
type CompletedEvent struct {
	baseEvent
	DriverID  kernel.UUID
	FinalFare kernel.Money
}

// EventName returns "RideCompleted".
func (CompletedEvent) EventName() string { return "RideCompleted" }

// CancelledEvent is emitted when a ride order is cancelled.
type CancelledEvent struct {
	baseEvent
	CancelledBy kernel.UUID
	Reason      string
}

// EventName returns "RideCancelled".
func (CancelledEvent) EventName() string { return "RideCancelled" }
