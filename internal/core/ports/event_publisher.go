package ports

import (
	"context"

	"ridehail/internal/core/domain/model/ride"
)

// RideEventPublisher delivers ride lifecycle events to external consumers,
// such as notification services listening on a message broker.
//
// Publishing happens after the owning transaction commits; a delivery
// failure must not roll back the state change it announces.
type RideEventPublisher interface {
	// Publish sends a single ride event.
	Publish(ctx context.Context, event ride.Event) error
}
