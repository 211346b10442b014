package queries

import (
	"context"
	"database/sql"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/ride"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPassengerRidesQueryHandler retrieves a passenger's ride history from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetPassengerRidesQueryHandler struct {
	db *gorm.DB
}

// NewGetPassengerRidesQueryHandler creates a handler for passenger ride history queries.
// Requires a GORM database connection for query execution.
func NewGetPassengerRidesQueryHandler(db *gorm.DB) GetPassengerRidesQueryHandler {
	return GetPassengerRidesQueryHandler{db: db}
}

// Handle executes the query to retrieve a passenger's rides, newest first.
// Returns an empty slice when the passenger has no rides.
func (h GetPassengerRidesQueryHandler) Handle(
	ctx context.Context,
	query GetPassengerRidesQuery,
) ([]GetPassengerRidesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rides := make([]GetPassengerRidesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			driver_id,
			pickup_street,
			destination_street,
			status,
			estimated_fare_amount,
			final_fare_amount,
			fare_currency,
			created_at
		FROM rides
		WHERE passenger_id = ?
		ORDER BY created_at DESC
	`, query.PassengerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rideResp GetPassengerRidesQueryResponse
		var id uuid.UUID
		var driverID uuid.NullUUID
		var status int
		var estimatedFareAmount int64
		var finalFareAmount sql.NullInt64

		err = rows.Scan(
			&id,
			&driverID,
			&rideResp.PickupStreet,
			&rideResp.DestinationStreet,
			&status,
			&estimatedFareAmount,
			&finalFareAmount,
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

		if driverID.Valid {
			dID, dErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if dErr != nil {
				return nil, dErr
			}
			rideResp.DriverID = &dID
		}

		rideResp.Status = ride.Status(status).String()
		rideResp.EstimatedFare = float64(estimatedFareAmount) / minorUnitsPerUnit

		if finalFareAmount.Valid {
			finalFare := float64(finalFareAmount.Int64) / minorUnitsPerUnit
			rideResp.FinalFare = &finalFare
		}

		rides = append(rides, rideResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rides, nil
}
