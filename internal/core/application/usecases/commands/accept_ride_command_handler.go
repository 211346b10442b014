package commands

import (
	"context"

	"ridehail/internal/core/domain/model/ride"
	"ridehail/internal/core/ports"
)

// AcceptRideCommandHandler handles ride acceptance. The ride moves to
// Accepted and the driver becomes unavailable in the same transaction.
// A driver who already holds an active ride cannot accept another one,
// regardless of their availability flag.
//
// Two drivers accepting the same ride race on the ride row: the repository's
// optimistic version predicate lets exactly one transaction commit, the other
// fails with errs.ErrConcurrencyConflict and the ride keeps its first driver.
type AcceptRideCommandHandler struct {
	uowFactory RideDriverUoWFactory
	publisher  ports.RideEventPublisher
	clock      ports.Clock
}

// NewAcceptRideCommandHandler creates a handler for ride acceptance.
func NewAcceptRideCommandHandler(
	uowFactory RideDriverUoWFactory,
	publisher ports.RideEventPublisher,
	clock ports.Clock,
) AcceptRideCommandHandler {
	return AcceptRideCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle processes the ride acceptance command.
func (h *AcceptRideCommandHandler) Handle(ctx context.Context, cmd AcceptRideCommand) error {
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

	// The availability flag can lag behind a crashed or concurrent flow;
	// the driver's active rides are the source of truth.
	activeRides, err := uow.RideRepository().GetAllActiveByDriver(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if len(activeRides) > 0 {
		return ride.ErrDriverNotAvailable
	}

	acceptedEvent, err := rideOrder.Accept(driver, h.clock.Now())
	if err != nil {
		return err
	}
	driver.SetAvailability(false)

	if err = uow.RideRepository().Update(ctx, rideOrder); err != nil {
		return err
	}
	if err = uow.DriverRepository().Update(ctx, driver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishRideEvent(ctx, h.publisher, acceptedEvent)
	return nil
}
