package commands

import (
	"errors"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

var ErrStartRideCommandIsNotConstructed = errors.New(
	"StartRideCommand must be created via NewStartRideCommand constructor",
)

// StartRideCommand represents the start of an accepted ride: the passenger
// is picked up and the trip begins.
type StartRideCommand struct { //nolint:recvcheck //using for validation
	rideID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartRideCommand creates a command to start an accepted ride.
func NewStartRideCommand(rideID kernel.UUID) (StartRideCommand, error) {
	cmd := StartRideCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRideID(rideID); err != nil {
		return StartRideCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartRideCommand) Validate() error {
	return c.guard.Validate(ErrStartRideCommandIsNotConstructed)
}

// RideID returns the identifier of the ride being started.
func (c StartRideCommand) RideID() kernel.UUID {
	return c.rideID
}

func (c *StartRideCommand) setRideID(rideID kernel.UUID) error {
	if err := rideID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ride", err)
	}

	c.rideID = rideID
	return nil
}
