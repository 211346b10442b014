package commands

import (
	"errors"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

var ErrMarkDriverArrivingCommandIsNotConstructed = errors.New(
	"MarkDriverArrivingCommand must be created via NewMarkDriverArrivingCommand constructor",
)

// MarkDriverArrivingCommand represents the accepting driver heading to the
// pickup point of an accepted ride.
type MarkDriverArrivingCommand struct { //nolint:recvcheck //using for validation
	rideID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDriverArrivingCommand creates a command to mark the driver as arriving.
func NewMarkDriverArrivingCommand(rideID kernel.UUID) (MarkDriverArrivingCommand, error) {
	cmd := MarkDriverArrivingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRideID(rideID); err != nil {
		return MarkDriverArrivingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDriverArrivingCommand) Validate() error {
	return c.guard.Validate(ErrMarkDriverArrivingCommandIsNotConstructed)
}

// RideID returns the identifier of the ride the driver is arriving for.
func (c MarkDriverArrivingCommand) RideID() kernel.UUID {
	return c.rideID
}

func (c *MarkDriverArrivingCommand) setRideID(rideID kernel.UUID) error {
	if err := rideID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ride", err)
	}

	c.rideID = rideID
	return nil
}
