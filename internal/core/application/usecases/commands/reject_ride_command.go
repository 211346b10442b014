package commands

import (
	"errors"
	"strings"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

var ErrRejectRideCommandIsNotConstructed = errors.New(
	"RejectRideCommand must be created via NewRejectRideCommand constructor",
)

// RejectRideCommand represents a driver declining a requested ride.
type RejectRideCommand struct { //nolint:recvcheck //using for validation
	rideID   kernel.UUID
	driverID kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewRejectRideCommand creates a command for a driver to reject a ride.
// The reason is optional.
func NewRejectRideCommand(rideID, driverID kernel.UUID, reason string) (RejectRideCommand, error) {
	cmd := RejectRideCommand{
		reason: strings.TrimSpace(reason),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRideID(rideID),
		cmd.setDriverID(driverID),
	); err != nil {
		return RejectRideCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectRideCommand) Validate() error {
	return c.guard.Validate(ErrRejectRideCommandIsNotConstructed)
}

// RideID returns the identifier of the ride being rejected.
func (c RejectRideCommand) RideID() kernel.UUID {
	return c.rideID
}

// DriverID returns the rejecting driver's identifier.
func (c RejectRideCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Reason returns the rejection reason, possibly empty.
func (c RejectRideCommand) Reason() string {
	return c.reason
}

func (c *RejectRideCommand) setRideID(rideID kernel.UUID) error {
	if err := rideID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ride", err)
	}

	c.rideID = rideID
	return nil
}

func (c *RejectRideCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driver", err)
	}

	c.driverID = driverID
	return nil
}
