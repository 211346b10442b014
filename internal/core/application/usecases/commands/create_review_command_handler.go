package commands

import (
	"context"
	"errors"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/review"
	"ridehail/internal/core/domain/model/ride"
	"ridehail/internal/core/ports"
)

// Review business-rule errors.
var (
	// ErrRideNotCompleted is returned when reviewing a ride that has not completed.
	ErrRideNotCompleted = errors.New("only completed rides can be reviewed")
	// ErrReviewerIsNotRidePassenger is returned when the reviewer did not take the ride.
	ErrReviewerIsNotRidePassenger = errors.New("reviewer is not the ride's passenger")
	// ErrRideAlreadyReviewed is returned when the ride already has a review.
	ErrRideAlreadyReviewed = errors.New("ride is already reviewed")
	// ErrDriverAlreadyReviewed is returned when the passenger already reviewed this driver.
	ErrDriverAlreadyReviewed = errors.New("driver is already reviewed by this passenger")
)

// CreateReviewCommandHandler handles review creation. It enforces the
// uniqueness rules the aggregate itself does not carry (one review per ride,
// one per driver/passenger pair) and folds the score into the driver's
// aggregated rating in the same transaction.
type CreateReviewCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

// NewCreateReviewCommandHandler creates a handler for review creation.
func NewCreateReviewCommandHandler(uowFactory UoWFactory, clock ports.Clock) CreateReviewCommandHandler {
	return CreateReviewCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the review creation command.
func (h *CreateReviewCommandHandler) Handle(ctx context.Context, cmd CreateReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rideOrder, err := uow.RideRepository().Get(ctx, cmd.RideID())
	if err != nil {
		return err
	}

	if rideOrder.Status() != ride.StatusCompleted {
		return ErrRideNotCompleted
	}
	if !rideOrder.PassengerID().IsEqual(cmd.PassengerID()) {
		return ErrReviewerIsNotRidePassenger
	}

	driverID := *rideOrder.DriverID()
	reviewRepo := uow.ReviewRepository()

	existing, err := reviewRepo.GetByRideID(ctx, rideOrder.ID())
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrRideAlreadyReviewed
	}

	existing, err = reviewRepo.GetByDriverAndPassenger(ctx, driverID, cmd.PassengerID())
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDriverAlreadyReviewed
	}

	submitted, err := kernel.NewRating(cmd.RatingValue(), 1)
	if err != nil {
		return err
	}

	newReview, err := review.NewReview(
		cmd.ReviewID(),
		rideOrder.ID(),
		driverID,
		cmd.PassengerID(),
		submitted,
		cmd.Comment(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = reviewRepo.Add(ctx, newReview); err != nil {
		return err
	}

	driver, err := uow.DriverRepository().Get(ctx, driverID)
	if err != nil {
		return err
	}

	// The first review sets the raw submitted value, later ones fold into
	// the running average.
	updated := submitted
	if driver.Rating() != nil {
		updated, err = driver.Rating().UpdateWith(cmd.RatingValue())
		if err != nil {
			return err
		}
	}

	if err = driver.UpdateRating(updated); err != nil {
		return err
	}
	if err = uow.DriverRepository().Update(ctx, driver); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
