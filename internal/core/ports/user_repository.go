package ports

import (
	"context"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/user"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// Fails if a user with the same email already exists.
	Add(ctx context.Context, aggregate *user.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *user.Driver) error

	// Get retrieves a driver by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such driver exists.
	Get(ctx context.Context, id kernel.UUID) (*user.Driver, error)

	// GetByEmail retrieves a driver by email (matched lowercased).
	GetByEmail(ctx context.Context, email string) (*user.Driver, error)

	// GetAllAvailable retrieves every driver currently open to assignment.
	GetAllAvailable(ctx context.Context) ([]*user.Driver, error)
}

// PassengerRepository defines the persistence contract for passenger aggregates.
type PassengerRepository interface {
	// Add persists a new passenger aggregate to storage.
	// Fails if a user with the same email already exists.
	Add(ctx context.Context, aggregate *user.Passenger) error

	// Update persists changes to an existing passenger aggregate.
	Update(ctx context.Context, aggregate *user.Passenger) error

	// Get retrieves a passenger by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such passenger exists.
	Get(ctx context.Context, id kernel.UUID) (*user.Passenger, error)

	// GetByEmail retrieves a passenger by email (matched lowercased).
	GetByEmail(ctx context.Context, email string) (*user.Passenger, error)
}
