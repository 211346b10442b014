package commands

import (
	"context"
)

// RejectRideCommandHandler handles ride rejection by a driver. The ride
// records the rejecting driver and reason; the driver's availability is not
// touched since they never committed to the ride.
type RejectRideCommandHandler struct {
	uowFactory RideDriverUoWFactory
}

// NewRejectRideCommandHandler creates a handler for ride rejection.
func NewRejectRideCommandHandler(uowFactory RideDriverUoWFactory) RejectRideCommandHandler {
	return RejectRideCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the ride rejection command.
func (h *RejectRideCommandHandler) Handle(ctx context.Context, cmd RejectRideCommand) error {
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

	driver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = rideOrder.Reject(driver, cmd.Reason()); err != nil {
		return err
	}

	if err = uow.RideRepository().Update(ctx, rideOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
