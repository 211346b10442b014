package commands

import (
	"context"
	"log/slog"

	"ridehail/internal/core/domain/model/ride"
	"ridehail/internal/core/ports"
)

// publishRideEvent sends a ride event after the owning transaction has
// committed. Delivery is best effort: a failure is logged, never returned,
// so a broker outage cannot fail an already committed state change.
func publishRideEvent(ctx context.Context, publisher ports.RideEventPublisher, event ride.Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish ride event",
			"event", event.EventName(), "ride_id", event.RideID(), "error", err)
	}
}
