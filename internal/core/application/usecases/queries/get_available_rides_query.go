package queries

import (
	"errors"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/guard"
)

var (
	ErrGetAvailableRidesQueryIsNotConstructed = errors.New(
		"GetAvailableRidesQuery must be created via NewGetAvailableRidesQuery constructor",
	)
)

// GetAvailableRidesQuery retrieves every ride request still waiting for a
// driver. This is the driver-facing feed of open requests to accept.
//
// Example:
//
//	query := NewGetAvailableRidesQuery()
//	handler := NewGetAvailableRidesQueryHandler(db)
//
//	rides, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve rides: %w", err)
//	}
//
//	for _, r := range rides {
//	    fmt.Printf("Ride from %s to %s\n", r.PickupStreet, r.DestinationStreet)
//	}
type GetAvailableRidesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableRidesQuery creates a query to retrieve open ride requests.
// This is a parameterless query that fetches every ride in Created status.
func NewGetAvailableRidesQuery() GetAvailableRidesQuery {
	return GetAvailableRidesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableRidesQueryIsNotConstructed if validation fails.
func (q GetAvailableRidesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableRidesQueryIsNotConstructed)
}

// GetAvailableRidesQueryResponse represents one open ride request in the
// driver-facing feed. Coordinates are included so a driver client can judge
// the distance to the pickup point.
type GetAvailableRidesQueryResponse struct {
	ID                   kernel.UUID
	PassengerID          kernel.UUID
	PickupStreet         string
	PickupLatitude       float64
	PickupLongitude      float64
	DestinationStreet    string
	DestinationLatitude  float64
	DestinationLongitude float64
	EstimatedFare        float64
	FareCurrency         string
	CreatedAt            time.Time
}
