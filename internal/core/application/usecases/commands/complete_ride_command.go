package commands

import (
	"errors"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

var ErrCompleteRideCommandIsNotConstructed = errors.New(
	"CompleteRideCommand must be created via NewCompleteRideCommand constructor",
)

// CompleteRideCommand represents the completion of an in-progress ride.
// The final fare is calculated by the handler from the actual ride duration;
// the surge flag scales it.
type CompleteRideCommand struct { //nolint:recvcheck //using for validation
	rideID  kernel.UUID
	isSurge bool

	guard guard.ConstructorGuard
}

// NewCompleteRideCommand creates a command to complete an in-progress ride.
func NewCompleteRideCommand(rideID kernel.UUID, isSurge bool) (CompleteRideCommand, error) {
	cmd := CompleteRideCommand{
		isSurge: isSurge,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setRideID(rideID); err != nil {
		return CompleteRideCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteRideCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRideCommandIsNotConstructed)
}

// RideID returns the identifier of the ride being completed.
func (c CompleteRideCommand) RideID() kernel.UUID {
	return c.rideID
}

// IsSurge reports whether surge pricing applies to the final fare.
func (c CompleteRideCommand) IsSurge() bool {
	return c.isSurge
}

func (c *CompleteRideCommand) setRideID(rideID kernel.UUID) error {
	if err := rideID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ride", err)
	}

	c.rideID = rideID
	return nil
}
