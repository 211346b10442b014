package commands

import (
	"context"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/ride"
	"ridehail/internal/core/ports"
)

// staleRideCancellationReason is recorded on every system cancellation.
const staleRideCancellationReason = "no driver accepted the ride in time"

// CancelStaleRidesCommandHandler cancels all Created rides older than the
// command's max age on behalf of a system actor. All cancellations happen in
// one transaction; events are published after commit.
type CancelStaleRidesCommandHandler struct {
	uowFactory    RideUoWFactory
	publisher     ports.RideEventPublisher
	clock         ports.Clock
	systemActorID kernel.UUID
}

// NewCancelStaleRidesCommandHandler creates a handler for the stale ride sweep.
// The systemActorID is recorded as the canceller on every swept ride.
func NewCancelStaleRidesCommandHandler(
	uowFactory RideUoWFactory,
	publisher ports.RideEventPublisher,
	clock ports.Clock,
	systemActorID kernel.UUID,
) CancelStaleRidesCommandHandler {
	return CancelStaleRidesCommandHandler{
		uowFactory:    uowFactory,
		publisher:     publisher,
		clock:         clock,
		systemActorID: systemActorID,
	}
}

// Handle processes the stale ride sweep command.
func (h *CancelStaleRidesCommandHandler) Handle(ctx context.Context, cmd CancelStaleRidesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rideRepo := uow.RideRepository()

	pending, err := rideRepo.GetAllInCreatedStatus(ctx)
	if err != nil {
		return err
	}

	now := h.clock.Now()
	cutoff := now.Add(-cmd.MaxAge())

	var cancelledEvents []ride.CancelledEvent
	for _, rideOrder := range pending {
		if rideOrder.CreatedAt().After(cutoff) {
			continue
		}

		event, err := rideOrder.Cancel(h.systemActorID, staleRideCancellationReason, now)
		if err != nil {
			return err
		}

		if err = rideRepo.Update(ctx, rideOrder); err != nil {
			return err
		}

		cancelledEvents = append(cancelledEvents, event)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, event := range cancelledEvents {
		publishRideEvent(ctx, h.publisher, event)
	}

	return nil
}
