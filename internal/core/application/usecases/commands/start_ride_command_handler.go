package commands

import (
	"context"

	"ridehail/internal/core/ports"
)

// StartRideCommandHandler handles ride start. The ride must be Accepted or
// DriverArriving with an assigned driver.
type StartRideCommandHandler struct {
	uowFactory RideUoWFactory
	publisher  ports.RideEventPublisher
	clock      ports.Clock
}

// NewStartRideCommandHandler creates a handler for ride start.
func NewStartRideCommandHandler(
	uowFactory RideUoWFactory,
	publisher ports.RideEventPublisher,
	clock ports.Clock,
) StartRideCommandHandler {
	return StartRideCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle processes the ride start command.
func (h *StartRideCommandHandler) Handle(ctx context.Context, cmd StartRideCommand) error {
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

	startedEvent, err := rideOrder.Start(h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.RideRepository().Update(ctx, rideOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishRideEvent(ctx, h.publisher, startedEvent)
	return nil
}
