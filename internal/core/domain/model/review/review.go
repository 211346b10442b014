// Package review contains the Review aggregate, an immutable record of a
// passenger rating a driver for a completed ride.
package review

import (
	"errors"
	"strings"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

// MaxCommentLength is the maximum length of a review comment after trimming.
const MaxCommentLength = 500

// ErrReviewIsNotConstructed is returned when using an improperly initialized Review.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review links a ride, a driver, and a passenger with a single review score
// and an optional comment. Once created a review never changes.
//
// Uniqueness rules (at most one review per ride, and at most one per
// driver/passenger pair) are enforced by the command handler that creates
// reviews, not by the aggregate itself.
type Review struct {
	id          kernel.UUID
	rideID      kernel.UUID
	driverID    kernel.UUID
	passengerID kernel.UUID
	rating      kernel.Rating
	comment     string
	createdAt   time.Time
	guard       guard.ConstructorGuard
}

// NewReview creates a new Review. The rating carries the single submitted
// score (one review), not an aggregated average. The comment is trimmed and
// may be empty; after trimming it must not exceed MaxCommentLength.
func NewReview(
	id kernel.UUID,
	rideID kernel.UUID,
	driverID kernel.UUID,
	passengerID kernel.UUID,
	rating kernel.Rating,
	comment string,
	now time.Time,
) (*Review, error) {
	review := &Review{
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		review.setID(id),
		review.setRideID(rideID),
		review.setDriverID(driverID),
		review.setPassengerID(passengerID),
		review.setRating(rating),
		review.setComment(comment),
	); err != nil {
		return nil, err
	}

	return review, nil
}

// RestoreReview reconstructs a Review from persistent storage.
func RestoreReview(
	id kernel.UUID,
	rideID kernel.UUID,
	driverID kernel.UUID,
	passengerID kernel.UUID,
	rating kernel.Rating,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	return NewReview(id, rideID, driverID, passengerID, rating, comment, createdAt)
}

// Validate checks if the Review was properly constructed via NewReview.
func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

// IsEqual compares two reviews by their unique identifiers.
func (r *Review) IsEqual(other *Review) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// RideID returns the reviewed ride's identifier.
func (r *Review) RideID() kernel.UUID {
	return r.rideID
}

// DriverID returns the reviewed driver's identifier.
func (r *Review) DriverID() kernel.UUID {
	return r.driverID
}

// PassengerID returns the reviewing passenger's identifier.
func (r *Review) PassengerID() kernel.UUID {
	return r.passengerID
}

// Rating returns the submitted score.
func (r *Review) Rating() kernel.Rating {
	return r.rating
}

// Comment returns the trimmed comment, possibly empty.
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns when the review was submitted.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setRideID(rideID kernel.UUID) error {
	if err := rideID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ride", err)
	}
	r.rideID = rideID
	return nil
}

func (r *Review) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driver", err)
	}
	r.driverID = driverID
	return nil
}

func (r *Review) setPassengerID(passengerID kernel.UUID) error {
	if err := passengerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("passenger", err)
	}
	r.passengerID = passengerID
	return nil
}

func (r *Review) setRating(rating kernel.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}
	r.rating = rating
	return nil
}

func (r *Review) setComment(comment string) error {
	comment = strings.TrimSpace(comment)
	if len(comment) > MaxCommentLength {
		return errs.NewValueIsOutOfRangeError("comment length", len(comment), 0, MaxCommentLength)
	}

	r.comment = comment
	return nil
}
