package commands

import (
	"context"
)

// UpdateDriverAvailabilityCommandHandler handles a driver's own availability
// toggle.
type UpdateDriverAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverAvailabilityCommandHandler creates a handler for availability updates.
func NewUpdateDriverAvailabilityCommandHandler(
	uowFactory DriverUoWFactory,
) UpdateDriverAvailabilityCommandHandler {
	return UpdateDriverAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability update command.
func (h *UpdateDriverAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDriverAvailabilityCommand,
) error {
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

	driver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	driver.SetAvailability(cmd.IsAvailable())

	if err = uow.DriverRepository().Update(ctx, driver); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
