package queries

import (
	"errors"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/guard"
)

var (
	ErrGetRideByIDQueryIsNotConstructed = errors.New(
		"GetRideByIDQuery must be created via NewGetRideByIDQuery constructor",
	)
)

// GetRideByIDQuery retrieves the full detail of a single ride, including its
// current status, fares, and lifecycle timestamps.
//
// Example:
//
//	query, err := NewGetRideByIDQuery(rideID)
//	if err != nil {
//	    return err
//	}
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get ride: %w", err)
//	}
//
//	fmt.Printf("Ride %s is %s\n", detail.ID, detail.Status)
type GetRideByIDQuery struct {
	rideID kernel.UUID
	guard  guard.ConstructorGuard
}

// NewGetRideByIDQuery creates a query to retrieve one ride by its identifier.
func NewGetRideByIDQuery(rideID kernel.UUID) (GetRideByIDQuery, error) {
	if err := rideID.Validate(); err != nil {
		return GetRideByIDQuery{}, err
	}

	return GetRideByIDQuery{
		rideID: rideID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RideID returns the identifier of the ride being requested.
func (q GetRideByIDQuery) RideID() kernel.UUID {
	return q.rideID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRideByIDQueryIsNotConstructed if validation fails.
func (q GetRideByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetRideByIDQueryIsNotConstructed)
}

// RideAddressResponse represents one endpoint of a ride in the read model.
type RideAddressResponse struct {
	Street     string
	City       string
	PostalCode string
	Latitude   float64
	Longitude  float64
}

// GetRideByIDQueryResponse represents the complete ride detail read model.
// Optional fields are nil until the corresponding lifecycle transition happens.
type GetRideByIDQueryResponse struct {
	ID                 kernel.UUID
	PassengerID        kernel.UUID
	DriverID           *kernel.UUID
	Pickup             RideAddressResponse
	Destination        RideAddressResponse
	Status             string
	EstimatedFare      float64
	FinalFare          *float64
	FareCurrency       string
	CreatedAt          time.Time
	AcceptedAt         *time.Time
	StartedAt          *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string
}
