package commands

import (
	"context"

	"ridehail/internal/core/ports"
)

// CancelRideCommandHandler handles ride cancellation. If a driver was
// already assigned they are made available again in the same transaction.
type CancelRideCommandHandler struct {
	uowFactory RideDriverUoWFactory
	publisher  ports.RideEventPublisher
	clock      ports.Clock
}

// NewCancelRideCommandHandler creates a handler for ride cancellation.
func NewCancelRideCommandHandler(
	uowFactory RideDriverUoWFactory,
	publisher ports.RideEventPublisher,
	clock ports.Clock,
) CancelRideCommandHandler {
	return CancelRideCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle processes the ride cancellation command.
func (h *CancelRideCommandHandler) Handle(ctx context.Context, cmd CancelRideCommand) error {
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

	rideOrder, err := uow.RideRepository().Get(ctx, cmd.RideID())
	if err != nil {
		return err
	}

	cancelledEvent, err := rideOrder.Cancel(cmd.CancelledBy(), cmd.Reason(), h.clock.Now())
	if err != nil {
		return err
	}

	if rideOrder.DriverID() != nil {
		driver, err := uow.DriverRepository().Get(ctx, *rideOrder.DriverID())
		if err != nil {
			return err
		}

		driver.SetAvailability(true)
		if err = uow.DriverRepository().Update(ctx, driver); err != nil {
			return err
		}
	}

	if err = uow.RideRepository().Update(ctx, rideOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishRideEvent(ctx, h.publisher, cancelledEvent)
	return nil
}
