// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/guard"
)

var (
	ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
		"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
	)
)

// GetAvailableDriversQuery retrieves every driver currently open to ride
// assignment. Used by passenger-facing listings and dispatch tooling.
//
// Example:
//
//	query := NewGetAvailableDriversQuery()
//	handler := NewGetAvailableDriversQueryHandler(db)
//
//	drivers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve drivers: %w", err)
//	}
//
//	for _, driver := range drivers {
//	    fmt.Printf("Driver %s (%s)\n", driver.FullName, driver.VehicleModel)
//	}
type GetAvailableDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDriversQuery creates a query to retrieve available drivers.
// This is a parameterless query that fetches the complete available driver list.
func NewGetAvailableDriversQuery() GetAvailableDriversQuery {
	return GetAvailableDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableDriversQueryIsNotConstructed if validation fails.
func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}

// GetAvailableDriversQueryResponse represents driver information in the read model.
// The rating fields are nil for drivers who have not been reviewed yet.
type GetAvailableDriversQueryResponse struct {
	ID                 kernel.UUID
	FullName           string
	VehicleModel       string
	VehiclePlateNumber string
	RatingValue        *float64
	RatingTotalReviews *int
}
