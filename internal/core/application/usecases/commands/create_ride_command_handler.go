package commands

import (
	"context"

	"ridehail/internal/core/domain/model/ride"
	"ridehail/internal/core/domain/services"
	"ridehail/internal/core/ports"
)

// CreateRideCommandHandler handles ride creation. It verifies the passenger
// exists, quotes an estimated fare, and persists the ride in Created status.
// The ride enters the passenger's history only on completion.
type CreateRideCommandHandler struct {
	uowFactory RidePassengerUoWFactory
	pricing    services.PricingService
	publisher  ports.RideEventPublisher
	clock      ports.Clock
}

// NewCreateRideCommandHandler creates a handler for ride creation.
func NewCreateRideCommandHandler(
	uowFactory RidePassengerUoWFactory,
	pricing services.PricingService,
	publisher ports.RideEventPublisher,
	clock ports.Clock,
) CreateRideCommandHandler {
	return CreateRideCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle processes the ride creation command. The created event is published
// after the transaction commits; a publish failure is logged but does not
// fail the command.
func (h *CreateRideCommandHandler) Handle(ctx context.Context, cmd CreateRideCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	estimatedFare, err := h.pricing.CalculateEstimatedFare(
		cmd.Pickup().Location(),
		cmd.Destination().Location(),
	)
	if err != nil {
		return err
	}

	rideOrder, createdEvent, err := ride.NewRideOrder(
		cmd.RideID(),
		cmd.PassengerID(),
		cmd.Pickup(),
		cmd.Destination(),
		estimatedFare,
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.PassengerRepository().Get(ctx, cmd.PassengerID()); err != nil {
		return err
	}

	if err = uow.RideRepository().Add(ctx, rideOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishRideEvent(ctx, h.publisher, createdEvent)
	return nil
}
