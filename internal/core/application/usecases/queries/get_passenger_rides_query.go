package queries

import (
	"errors"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/guard"
)

var (
	ErrGetPassengerRidesQueryIsNotConstructed = errors.New(
		"GetPassengerRidesQuery must be created via NewGetPassengerRidesQuery constructor",
	)
)

// GetPassengerRidesQuery retrieves a passenger's ride history, newest first.
//
// Example:
//
//	query, err := NewGetPassengerRidesQuery(passengerID)
//	if err != nil {
//	    return err
//	}
//
//	rides, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get rides: %w", err)
//	}
//
//	fmt.Printf("Passenger took %d rides\n", len(rides))
type GetPassengerRidesQuery struct {
	passengerID kernel.UUID
	guard       guard.ConstructorGuard
}

// NewGetPassengerRidesQuery creates a query to retrieve a passenger's rides.
func NewGetPassengerRidesQuery(passengerID kernel.UUID) (GetPassengerRidesQuery, error) {
	if err := passengerID.Validate(); err != nil {
		return GetPassengerRidesQuery{}, err
	}

	return GetPassengerRidesQuery{
		passengerID: passengerID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// PassengerID returns the identifier of the passenger whose rides are requested.
func (q GetPassengerRidesQuery) PassengerID() kernel.UUID {
	return q.passengerID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPassengerRidesQueryIsNotConstructed if validation fails.
func (q GetPassengerRidesQuery) Validate() error {
	return q.guard.Validate(ErrGetPassengerRidesQueryIsNotConstructed)
}

// GetPassengerRidesQueryResponse represents one ride in a passenger's history.
// Carries enough detail for a ride list view without loading full aggregates.
type GetPassengerRidesQueryResponse struct {
	ID                kernel.UUID
	DriverID          *kernel.UUID
	PickupStreet      string
	DestinationStreet string
	Status            string
	EstimatedFare     float64
	FinalFare         *float64
	FareCurrency      string
	CreatedAt         time.Time
}
