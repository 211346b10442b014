package queries

import (
	"errors"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/guard"
)

var (
	ErrGetDriverReviewsQueryIsNotConstructed = errors.New(
		"GetDriverReviewsQuery must be created via NewGetDriverReviewsQuery constructor",
	)
)

// GetDriverReviewsQuery retrieves every review left for a driver, newest first.
//
// Example:
//
//	query, err := NewGetDriverReviewsQuery(driverID)
//	if err != nil {
//	    return err
//	}
//
//	reviews, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get reviews: %w", err)
//	}
//
//	for _, review := range reviews {
//	    fmt.Printf("%.1f: %s\n", review.RatingValue, review.Comment)
//	}
type GetDriverReviewsQuery struct {
	driverID kernel.UUID
	guard    guard.ConstructorGuard
}

// NewGetDriverReviewsQuery creates a query to retrieve a driver's reviews.
func NewGetDriverReviewsQuery(driverID kernel.UUID) (GetDriverReviewsQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverReviewsQuery{}, err
	}

	return GetDriverReviewsQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// DriverID returns the identifier of the driver whose reviews are requested.
func (q GetDriverReviewsQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDriverReviewsQueryIsNotConstructed if validation fails.
func (q GetDriverReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverReviewsQueryIsNotConstructed)
}

// GetDriverReviewsQueryResponse represents one review in the read model.
type GetDriverReviewsQueryResponse struct {
	ID          kernel.UUID
	RideID      kernel.UUID
	PassengerID kernel.UUID
	RatingValue float64
	Comment     string
	CreatedAt   time.Time
}
