package commands

import (
	"errors"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

var ErrCreateRideCommandIsNotConstructed = errors.New(
	"CreateRideCommand must be created via NewCreateRideCommand constructor",
)

// CreateRideCommand represents a passenger's request for a new ride between
// two addresses. The fare estimate is calculated by the handler, not the
// caller.
//
// Example:
//
//	cmd, err := NewCreateRideCommand(kernel.NewUUID(), passengerID, pickup, destination)
//	if err != nil {
//	    return fmt.Errorf("invalid ride request: %w", err)
//	}
//
//	handler := NewCreateRideCommandHandler(uowFactory, pricing, publisher, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create ride: %w", err)
//	}
type CreateRideCommand struct { //nolint:recvcheck //using for validation
	rideID      kernel.UUID
	passengerID kernel.UUID
	pickup      kernel.Address
	destination kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateRideCommand creates a command to request a new ride.
// Both addresses must be properly constructed kernel.Address values.
func NewCreateRideCommand(
	rideID kernel.UUID,
	passengerID kernel.UUID,
	pickup kernel.Address,
	destination kernel.Address,
) (CreateRideCommand, error) {
	cmd := CreateRideCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRideID(rideID),
		cmd.setPassengerID(passengerID),
		cmd.setPickup(pickup),
		cmd.setDestination(destination),
	); err != nil {
		return CreateRideCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRideCommand) Validate() error {
	return c.guard.Validate(ErrCreateRideCommandIsNotConstructed)
}

// RideID returns the unique identifier for the new ride.
func (c CreateRideCommand) RideID() kernel.UUID {
	return c.rideID
}

// PassengerID returns the requesting passenger's identifier.
func (c CreateRideCommand) PassengerID() kernel.UUID {
	return c.passengerID
}

// Pickup returns the pickup address.
func (c CreateRideCommand) Pickup() kernel.Address {
	return c.pickup
}

// Destination returns the destination address.
func (c CreateRideCommand) Destination() kernel.Address {
	return c.destination
}

func (c *CreateRideCommand) setRideID(rideID kernel.UUID) error {
	if err := rideID.Validate(); err != nil {
		return err
	}

	c.rideID = rideID
	return nil
}

func (c *CreateRideCommand) setPassengerID(passengerID kernel.UUID) error {
	if err := passengerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("passenger", err)
	}

	c.passengerID = passengerID
	return nil
}

func (c *CreateRideCommand) setPickup(pickup kernel.Address) error {
	if err := pickup.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup address", err)
	}

	c.pickup = pickup
	return nil
}

func (c *CreateRideCommand) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination address", err)
	}

	c.destination = destination
	return nil
}
