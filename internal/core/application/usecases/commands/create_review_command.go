package commands

import (
	"errors"
	"strings"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

var ErrCreateReviewCommandIsNotConstructed = errors.New(
	"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
)

// CreateReviewCommand represents a passenger reviewing the driver of a
// completed ride.
type CreateReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID    kernel.UUID
	rideID      kernel.UUID
	passengerID kernel.UUID
	ratingValue float64
	comment     string

	guard guard.ConstructorGuard
}

// NewCreateReviewCommand creates a command to review a completed ride.
// The rating value must be within [0.0, 5.0]; the comment is optional.
func NewCreateReviewCommand(
	reviewID kernel.UUID,
	rideID kernel.UUID,
	passengerID kernel.UUID,
	ratingValue float64,
	comment string,
) (CreateReviewCommand, error) {
	cmd := CreateReviewCommand{
		comment: strings.TrimSpace(comment),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setRideID(rideID),
		cmd.setPassengerID(passengerID),
		cmd.setRatingValue(ratingValue),
	); err != nil {
		return CreateReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

// ReviewID returns the unique identifier for the new review.
func (c CreateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// RideID returns the reviewed ride's identifier.
func (c CreateReviewCommand) RideID() kernel.UUID {
	return c.rideID
}

// PassengerID returns the reviewing passenger's identifier.
func (c CreateReviewCommand) PassengerID() kernel.UUID {
	return c.passengerID
}

// RatingValue returns the submitted score.
func (c CreateReviewCommand) RatingValue() float64 {
	return c.ratingValue
}

// Comment returns the trimmed comment, possibly empty.
func (c CreateReviewCommand) Comment() string {
	return c.comment
}

func (c *CreateReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *CreateReviewCommand) setRideID(rideID kernel.UUID) error {
	if err := rideID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ride", err)
	}

	c.rideID = rideID
	return nil
}

func (c *CreateReviewCommand) setPassengerID(passengerID kernel.UUID) error {
	if err := passengerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("passenger", err)
	}

	c.passengerID = passengerID
	return nil
}

func (c *CreateReviewCommand) setRatingValue(ratingValue float64) error {
	if ratingValue < kernel.MinRatingValue || ratingValue > kernel.MaxRatingValue {
		return errs.NewValueIsOutOfRangeError(
			"rating", ratingValue, kernel.MinRatingValue, kernel.MaxRatingValue)
	}

	c.ratingValue = ratingValue
	return nil
}
