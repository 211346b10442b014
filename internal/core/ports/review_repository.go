package ports

import (
	"context"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for review aggregates.
// Reviews are immutable, so there is no Update.
type ReviewRepository interface {
	// Add persists a new review to storage.
	Add(ctx context.Context, aggregate *review.Review) error

	// Get retrieves a review by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such review exists.
	Get(ctx context.Context, id kernel.UUID) (*review.Review, error)

	// GetByRideID retrieves the review for a ride, or nil when the ride
	// has not been reviewed. Used to enforce one review per ride.
	GetByRideID(ctx context.Context, rideID kernel.UUID) (*review.Review, error)

	// GetByDriverAndPassenger retrieves the review a passenger left for a
	// driver, or nil when none exists. Used to enforce one review per pair.
	GetByDriverAndPassenger(ctx context.Context, driverID, passengerID kernel.UUID) (*review.Review, error)

	// GetAllByDriver retrieves every review left for a driver,
	// newest first.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*review.Review, error)
}
