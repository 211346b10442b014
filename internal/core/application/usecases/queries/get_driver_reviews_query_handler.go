package queries

import (
	"context"

	"ridehail/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverReviewsQueryHandler retrieves a driver's reviews from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDriverReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverReviewsQueryHandler creates a handler for driver review queries.
// Requires a GORM database connection for query execution.
func NewGetDriverReviewsQueryHandler(db *gorm.DB) GetDriverReviewsQueryHandler {
	return GetDriverReviewsQueryHandler{db: db}
}

// Handle executes the query to retrieve a driver's reviews, newest first.
// Returns an empty slice when the driver has no reviews.
func (h GetDriverReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetDriverReviewsQuery,
) ([]GetDriverReviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reviews := make([]GetDriverReviewsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			ride_id,
			passenger_id,
			rating_value,
			comment,
			created_at
		FROM reviews
		WHERE driver_id = ?
		ORDER BY created_at DESC
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var reviewResp GetDriverReviewsQueryResponse
		var id, rideID, passengerID uuid.UUID

		err = rows.Scan(
			&id,
			&rideID,
			&passengerID,
			&reviewResp.RatingValue,
			&reviewResp.Comment,
			&reviewResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		reviewID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		reviewResp.ID = reviewID

		rID, rErr := kernel.UUIDFromBytes(rideID[:])
		if rErr != nil {
			return nil, rErr
		}
		reviewResp.RideID = rID

		pID, pErr := kernel.UUIDFromBytes(passengerID[:])
		if pErr != nil {
			return nil, pErr
		}
		reviewResp.PassengerID = pID

		reviews = append(reviews, reviewResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
