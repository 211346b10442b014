package queries

import (
	"context"
	"database/sql"
	"errors"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/ride"
	"ridehail/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// minorUnitsPerUnit converts persisted fare amounts back to decimal values.
const minorUnitsPerUnit = 100.0

// GetRideByIDQueryHandler retrieves a single ride's detail from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetRideByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetRideByIDQueryHandler creates a handler for ride detail queries.
// Requires a GORM database connection for query execution.
func NewGetRideByIDQueryHandler(db *gorm.DB) GetRideByIDQueryHandler {
	return GetRideByIDQueryHandler{db: db}
}

// Handle executes the query to retrieve one ride.
// Returns errs.ErrObjectNotFound when the ride does not exist.
func (h GetRideByIDQueryHandler) Handle(
	ctx context.Context,
	query GetRideByIDQuery,
) (GetRideByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRideByIDQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			passenger_id,
			driver_id,
			pickup_street,
			pickup_city,
			pickup_postal_code,
			pickup_latitude,
			pickup_longitude,
			destination_street,
			destination_city,
			destination_postal_code,
			destination_latitude,
			destination_longitude,
			status,
			estimated_fare_amount,
			final_fare_amount,
			fare_currency,
			created_at,
			accepted_at,
			started_at,
			completed_at,
			cancelled_at,
			cancellation_reason
		FROM rides
		WHERE id = ?
	`, query.RideID().Bytes()).Row()

	var response GetRideByIDQueryResponse
	var id, passengerID uuid.UUID
	var driverID uuid.NullUUID
	var status int
	var estimatedFareAmount int64
	var finalFareAmount sql.NullInt64
	var acceptedAt, startedAt, completedAt, cancelledAt sql.NullTime

	err := row.Scan(
		&id,
		&passengerID,
		&driverID,
		&response.Pickup.Street,
		&response.Pickup.City,
		&response.Pickup.PostalCode,
		&response.Pickup.Latitude,
		&response.Pickup.Longitude,
		&response.Destination.Street,
		&response.Destination.City,
		&response.Destination.PostalCode,
		&response.Destination.Latitude,
		&response.Destination.Longitude,
		&status,
		&estimatedFareAmount,
		&finalFareAmount,
		&response.FareCurrency,
		&response.CreatedAt,
		&acceptedAt,
		&startedAt,
		&completedAt,
		&cancelledAt,
		&response.CancellationReason,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetRideByIDQueryResponse{}, errs.NewObjectNotFoundError("ride", query.RideID().String())
		}
		return GetRideByIDQueryResponse{}, err
	}

	rideID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetRideByIDQueryResponse{}, err
	}
	response.ID = rideID

	pID, err := kernel.UUIDFromBytes(passengerID[:])
	if err != nil {
		return GetRideByIDQueryResponse{}, err
	}
	response.PassengerID = pID

	if driverID.Valid {
		dID, dErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if dErr != nil {
			return GetRideByIDQueryResponse{}, dErr
		}
		response.DriverID = &dID
	}

	response.Status = ride.Status(status).String()
	response.EstimatedFare = float64(estimatedFareAmount) / minorUnitsPerUnit

	if finalFareAmount.Valid {
		finalFare := float64(finalFareAmount.Int64) / minorUnitsPerUnit
		response.FinalFare = &finalFare
	}

	if acceptedAt.Valid {
		response.AcceptedAt = &acceptedAt.Time
	}
	if startedAt.Valid {
		response.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		response.CompletedAt = &completedAt.Time
	}
	if cancelledAt.Valid {
		response.CancelledAt = &cancelledAt.Time
	}

	return response, nil
}
