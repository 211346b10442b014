package commands

import (
	"context"
)

// MarkDriverArrivingCommandHandler handles the driver-arriving transition.
// The ride must be Accepted. No event is published; consumers only react to
// lifecycle-changing transitions.
type MarkDriverArrivingCommandHandler struct {
	uowFactory RideUoWFactory
}

// NewMarkDriverArrivingCommandHandler creates a handler for the driver-arriving transition.
func NewMarkDriverArrivingCommandHandler(uowFactory RideUoWFactory) MarkDriverArrivingCommandHandler {
	return MarkDriverArrivingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver-arriving command.
func (h *MarkDriverArrivingCommandHandler) Handle(ctx context.Context, cmd MarkDriverArrivingCommand) error {
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

	if err = rideOrder.StartArriving(); err != nil {
		return err
	}

	if err = uow.RideRepository().Update(ctx, rideOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
