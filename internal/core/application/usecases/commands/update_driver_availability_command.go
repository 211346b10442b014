package commands

import (
	"errors"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

var ErrUpdateDriverAvailabilityCommandIsNotConstructed = errors.New(
	"UpdateDriverAvailabilityCommand must be created via NewUpdateDriverAvailabilityCommand constructor",
)

// UpdateDriverAvailabilityCommand represents a driver toggling their own
// willingness to take rides.
type UpdateDriverAvailabilityCommand struct { //nolint:recvcheck //using for validation
	driverID    kernel.UUID
	isAvailable bool

	guard guard.ConstructorGuard
}

// NewUpdateDriverAvailabilityCommand creates a command to set a driver's availability.
func NewUpdateDriverAvailabilityCommand(
	driverID kernel.UUID,
	isAvailable bool,
) (UpdateDriverAvailabilityCommand, error) {
	cmd := UpdateDriverAvailabilityCommand{
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setDriverID(driverID); err != nil {
		return UpdateDriverAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverAvailabilityCommandIsNotConstructed)
}

// DriverID returns the driver's identifier.
func (c UpdateDriverAvailabilityCommand) DriverID() kernel.UUID {
	return c.driverID
}

// IsAvailable returns the requested availability state.
func (c UpdateDriverAvailabilityCommand) IsAvailable() bool {
	return c.isAvailable
}

func (c *UpdateDriverAvailabilityCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driver", err)
	}

	c.driverID = driverID
	return nil
}
