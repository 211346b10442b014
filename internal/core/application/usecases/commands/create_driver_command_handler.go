package commands

import (
	"context"
	"errors"

	"ridehail/internal/core/domain/model/user"
	"ridehail/internal/core/ports"
	"ridehail/internal/pkg/errs"
)

// CreateDriverCommandHandler handles driver registration. New drivers start
// available with no rating.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	clock      ports.Clock
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(
	uowFactory DriverUoWFactory,
	clock ports.Clock,
) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the driver registration command.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	driver, err := user.NewDriver(
		cmd.DriverID(),
		cmd.FullName(),
		cmd.Email(),
		cmd.PhoneNumber(),
		cmd.LicenseNumber(),
		cmd.VehicleModel(),
		cmd.VehiclePlateNumber(),
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

	driverRepo := uow.DriverRepository()

	existing, err := driverRepo.GetByEmail(ctx, driver.Email())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return ErrEmailAlreadyRegistered
	}

	if err = driverRepo.Add(ctx, driver); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
