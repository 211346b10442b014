// Package reviewrepo provides data transfer objects and mapping functions for review persistence.
// Reviews are immutable once written, so the repository only supports inserts and reads.
package reviewrepo

import (
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting reviews.
// The ride ID carries a unique index to enforce one review per ride, and the
// driver/passenger pair carries a composite unique index to enforce one review
// per passenger for a given driver.
type ReviewDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	RideID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	DriverID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_driver_passenger;index"`
	PassengerID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_driver_passenger"`
	RatingValue        float64   `gorm:"not null"`
	RatingTotalReviews int       `gorm:"not null"`
	Comment            string    `gorm:"type:text"`
	CreatedAt          time.Time
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a review domain aggregate to its database representation.
func fromDomain(r *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:                 r.ID().Bytes(),
		RideID:             r.RideID().Bytes(),
		DriverID:           r.DriverID().Bytes(),
		PassengerID:        r.PassengerID().Bytes(),
		RatingValue:        r.Rating().Value(),
		RatingTotalReviews: r.Rating().TotalReviews(),
		Comment:            r.Comment(),
		CreatedAt:          r.CreatedAt(),
	}
}

// toDomain converts a database DTO to a review domain aggregate.
func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	rideID, err := kernel.UUIDFromBytes(dto.RideID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	passengerID, err := kernel.UUIDFromBytes(dto.PassengerID[:])
	if err != nil {
		return nil, err
	}

	rating, err := kernel.NewRating(dto.RatingValue, dto.RatingTotalReviews)
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(id, rideID, driverID, passengerID, rating, dto.Comment, dto.CreatedAt)
}
