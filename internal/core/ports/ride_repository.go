// Package ports defines the contracts between the domain layer and
// infrastructure: repositories, the unit of work, the event publisher,
// and the clock. These interfaces enable dependency inversion and
// testability.
package ports

import (
	"context"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/ride"
)

// RideRepository defines the persistence contract for ride order aggregates.
type RideRepository interface {
	// Add persists a new ride order aggregate to storage.
	// The ride must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *ride.RideOrder) error

	// Update persists changes to an existing ride order aggregate using
	// optimistic concurrency: the stored row must still carry the version
	// the aggregate was loaded with, otherwise errs.ErrConcurrencyConflict
	// is returned and the caller should reload and retry.
	Update(ctx context.Context, aggregate *ride.RideOrder) error

	// Get retrieves a ride order by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such ride exists.
	Get(ctx context.Context, id kernel.UUID) (*ride.RideOrder, error)

	// GetAllInCreatedStatus retrieves rides still waiting for a driver.
	// Used by driver-facing listings and the stale ride cancellation job.
	GetAllInCreatedStatus(ctx context.Context) ([]*ride.RideOrder, error)

	// GetAllActiveByDriver retrieves the driver's rides in Accepted,
	// DriverArriving, or InProgress status.
	GetAllActiveByDriver(ctx context.Context, driverID kernel.UUID) ([]*ride.RideOrder, error)
}
