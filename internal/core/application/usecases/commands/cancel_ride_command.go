package commands

import (
	"errors"
	"strings"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

var ErrCancelRideCommandIsNotConstructed = errors.New(
	"CancelRideCommand must be created via NewCancelRideCommand constructor",
)

// CancelRideCommand represents a request to cancel a ride that has not yet
// started. The canceller may be the passenger, a driver, or the system.
type CancelRideCommand struct { //nolint:recvcheck //using for validation
	rideID      kernel.UUID
	cancelledBy kernel.UUID
	reason      string

	guard guard.ConstructorGuard
}

// NewCancelRideCommand creates a command to cancel a ride. The reason is
// optional.
func NewCancelRideCommand(rideID, cancelledBy kernel.UUID, reason string) (CancelRideCommand, error) {
	cmd := CancelRideCommand{
		reason: strings.TrimSpace(reason),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRideID(rideID),
		cmd.setCancelledBy(cancelledBy),
	); err != nil {
		return CancelRideCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelRideCommand) Validate() error {
	return c.guard.Validate(ErrCancelRideCommandIsNotConstructed)
}

// RideID returns the identifier of the ride being cancelled.
func (c CancelRideCommand) RideID() kernel.UUID {
	return c.rideID
}

// CancelledBy returns who requested the cancellation.
func (c CancelRideCommand) CancelledBy() kernel.UUID {
	return c.cancelledBy
}

// Reason returns the cancellation reason, possibly empty.
func (c CancelRideCommand) Reason() string {
	return c.reason
}

func (c *CancelRideCommand) setRideID(rideID kernel.UUID) error {
	if err := rideID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ride", err)
	}

	c.rideID = rideID
	return nil
}

func (c *CancelRideCommand) setCancelledBy(cancelledBy kernel.UUID) error {
	if err := cancelledBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("cancelled by", err)
	}

	c.cancelledBy = cancelledBy
	return nil
}
