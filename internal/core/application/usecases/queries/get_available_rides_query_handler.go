package queries

import (
	"context"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/ride"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableRidesQueryHandler retrieves open ride requests from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAvailableRidesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableRidesQueryHandler creates a handler for open ride request queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableRidesQueryHandler(db *gorm.DB) GetAvailableRidesQueryHandler {
	return GetAvailableRidesQueryHandler{db: db}
}

// Handle executes the query to retrieve every ride waiting for a driver,
// longest-waiting first. Returns an empty slice when no requests are open.
func (h GetAvailableRidesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableRidesQuery,
) ([]GetAvailableRidesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rides := make([]GetAvailableRidesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			passenger_id,
			pickup_street,
			pickup_latitude,
			pickup_longitude,
			destination_street,
			destination_latitude,
			destination_longitude,
			estimated_fare_amount,
			fare_currency,
			created_at
		FROM rides
		WHERE status = ?
		ORDER BY created_at
	`, int(ride.StatusCreated)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rideResp GetAvailableRidesQueryResponse
		var id, passengerID uuid.UUID
		var estimatedFareAmount int64

		err = rows.Scan(
			&id,
			&passengerID,
			&rideResp.PickupStreet,
			&rideResp.PickupLatitude,
			&rideResp.PickupLongitude,
			&rideResp.DestinationStreet,
			&rideResp.DestinationLatitude,
			&rideResp.DestinationLongitude,
			&estimatedFareAmount,
			&rideResp.FareCurrency,
			&rideResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		rideID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		rideResp.ID = rideID

		pID, pErr := kernel.UUIDFromBytes(passengerID[:])
		if pErr != nil {
			return nil, pErr
		}
		rideResp.PassengerID = pID

		rideResp.EstimatedFare = float64(estimatedFareAmount) / minorUnitsPerUnit

		rides = append(rides, rideResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rides, nil
}
