package commands

import (
	"context"
	"errors"

	"ridehail/internal/core/domain/services"
	"ridehail/internal/core/ports"
)

// ErrRideHasNotStarted is returned when completing a ride that has no
// recorded start time.
var ErrRideHasNotStarted = errors.New("ride has not started")

// CompleteRideCommandHandler handles ride completion. The final fare is
// calculated from the actual elapsed duration, the ride moves to Completed,
// the driver is freed and credited with the ride, and the ride is recorded
// in the passenger's history, all in one transaction. Only completed rides
// enter the history; cancelled and rejected requests never do.
type CompleteRideCommandHandler struct {
	uowFactory RideDriverPassengerUoWFactory
	pricing    services.PricingService
	publisher  ports.RideEventPublisher
	clock      ports.Clock
}

// NewCompleteRideCommandHandler creates a handler for ride completion.
func NewCompleteRideCommandHandler(
	uowFactory RideDriverPassengerUoWFactory,
	pricing services.PricingService,
	publisher ports.RideEventPublisher,
	clock ports.Clock,
) CompleteRideCommandHandler {
	return CompleteRideCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle processes the ride completion command.
func (h *CompleteRideCommandHandler) Handle(ctx context.Context, cmd CompleteRideCommand) error {
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

	if rideOrder.StartedAt() == nil {
		return ErrRideHasNotStarted
	}

	now := h.clock.Now()
	duration := now.Sub(*rideOrder.StartedAt())

	finalFare, err := h.pricing.CalculateFinalFare(
		rideOrder.Pickup().Location(),
		rideOrder.Destination().Location(),
		duration,
		cmd.IsSurge(),
	)
	if err != nil {
		return err
	}

	completedEvent, err := rideOrder.Complete(finalFare, now)
	if err != nil {
		return err
	}

	driver, err := uow.DriverRepository().Get(ctx, *rideOrder.DriverID())
	if err != nil {
		return err
	}

	driver.SetAvailability(true)
	if err = driver.AddCompletedRide(rideOrder.ID()); err != nil {
		return err
	}

	passenger, err := uow.PassengerRepository().Get(ctx, rideOrder.PassengerID())
	if err != nil {
		return err
	}

	if err = passenger.AddRideToHistory(rideOrder.ID()); err != nil {
		return err
	}

	if err = uow.RideRepository().Update(ctx, rideOrder); err != nil {
		return err
	}
	if err = uow.DriverRepository().Update(ctx, driver); err != nil {
		return err
	}
	if err = uow.PassengerRepository().Update(ctx, passenger); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishRideEvent(ctx, h.publisher, completedEvent)
	return nil
}
