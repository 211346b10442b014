package commands

import (
	"errors"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

var ErrAcceptRideCommandIsNotConstructed = errors.New(
	"AcceptRideCommand must be created via NewAcceptRideCommand constructor",
)

// AcceptRideCommand represents a driver's acceptance of a requested ride.
type AcceptRideCommand struct { //nolint:recvcheck //using for validation
	rideID   kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptRideCommand creates a command for a driver to accept a ride.
func NewAcceptRideCommand(rideID, driverID kernel.UUID) (AcceptRideCommand, error) {
	cmd := AcceptRideCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRideID(rideID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AcceptRideCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptRideCommand) Validate() error {
	return c.guard.Validate(ErrAcceptRideCommandIsNotConstructed)
}

// RideID returns the identifier of the ride being accepted.
func (c AcceptRideCommand) RideID() kernel.UUID {
	return c.rideID
}

// DriverID returns the accepting driver's identifier.
func (c AcceptRideCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AcceptRideCommand) setRideID(rideID kernel.UUID) error {
	if err := rideID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ride", err)
	}

	c.rideID = rideID
	return nil
}

func (c *AcceptRideCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driver", err)
	}

	c.driverID = driverID
	return nil
}
