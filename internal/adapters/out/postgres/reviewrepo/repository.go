package reviewrepo

import (
	"context"
	"errors"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/review"
	"ridehail/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new review to the database.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a review by ID.
func (r *GormReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("review", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByRideID retrieves the review for a ride, or nil when the ride has not
// been reviewed yet.
func (r *GormReviewRepository) GetByRideID(ctx context.Context, rideID kernel.UUID) (*review.Review, error) {
	if err := rideID.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	if err := r.db.WithContext(ctx).First(&dto, "ride_id = ?", rideID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByDriverAndPassenger retrieves the review a passenger left for a driver,
// or nil when none exists.
func (r *GormReviewRepository) GetByDriverAndPassenger(
	ctx context.Context,
	driverID kernel.UUID,
	passengerID kernel.UUID,
) (*review.Review, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}
	if err := passengerID.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "driver_id = ? AND passenger_id = ?", driverID.Bytes(), passengerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByDriver retrieves every review left for a driver, newest first.
func (r *GormReviewRepository) GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*review.Review, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReviewDTO
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "driver_id = ?", driverID.Bytes()).Error; err != nil {
		return nil, err
	}

	reviews := make([]*review.Review, 0, len(dtos))
	for _, dto := range dtos {
		rv, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}

	return reviews, nil
}
