package commands

import (
	"errors"
	"time"

	"ridehail/internal/pkg/guard"
)

var (
	ErrCancelStaleRidesCommandIsNotConstructed = errors.New(
		"CancelStaleRidesCommand must be created via NewCancelStaleRidesCommand constructor",
	)
	ErrMaxAgeIsInvalid = errors.New("max age must be greater than 0")
)

// CancelStaleRidesCommand triggers cancellation of all rides that have been
// waiting for a driver longer than the given age. Run periodically by the
// job scheduler.
//
// Example:
//
//	cmd, _ := NewCancelStaleRidesCommand(10 * time.Minute)
//	handler := NewCancelStaleRidesCommandHandler(uowFactory, publisher, clock, systemID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("stale ride sweep failed: %v", err)
//	}
type CancelStaleRidesCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleRidesCommand creates a command to cancel rides older than maxAge.
func NewCancelStaleRidesCommand(maxAge time.Duration) (CancelStaleRidesCommand, error) {
	cmd := CancelStaleRidesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMaxAge(maxAge); err != nil {
		return CancelStaleRidesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleRidesCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleRidesCommandIsNotConstructed)
}

// MaxAge returns how long a ride may wait for a driver before being cancelled.
func (c CancelStaleRidesCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *CancelStaleRidesCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return ErrMaxAgeIsInvalid
	}

	c.maxAge = maxAge
	return nil
}
