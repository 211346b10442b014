// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ridehail/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest unit of work that covers the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RideRepoFactory provides access to the ride repository within a transaction.
	RideRepoFactory interface {
		RideRepository() ports.RideRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// PassengerRepoFactory provides access to the passenger repository within a transaction.
	PassengerRepoFactory interface {
		PassengerRepository() ports.PassengerRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// RideUoW manages transactions for ride-only operations.
	RideUoW interface {
		TxManager
		RideRepoFactory
	}

	// RideUoWFactory creates new ride unit of work instances.
	RideUoWFactory interface {
		Create() RideUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// PassengerUoW manages transactions for passenger-only operations.
	PassengerUoW interface {
		TxManager
		PassengerRepoFactory
	}

	// PassengerUoWFactory creates new passenger unit of work instances.
	PassengerUoWFactory interface {
		Create() PassengerUoW
	}

	// RideDriverUoW manages transactions spanning ride and driver aggregates.
	// Used by commands that move a ride through its lifecycle and adjust the
	// assigned driver's availability in the same transaction.
	RideDriverUoW interface {
		TxManager
		RideRepoFactory
		DriverRepoFactory
	}

	// RideDriverUoWFactory creates new ride/driver unit of work instances.
	RideDriverUoWFactory interface {
		Create() RideDriverUoW
	}

	// RidePassengerUoW manages transactions spanning ride and passenger aggregates.
	RidePassengerUoW interface {
		TxManager
		RideRepoFactory
		PassengerRepoFactory
	}

	// RidePassengerUoWFactory creates new ride/passenger unit of work instances.
	RidePassengerUoWFactory interface {
		Create() RidePassengerUoW
	}

	// RideDriverPassengerUoW manages transactions spanning ride, driver, and
	// passenger aggregates. Used by ride completion, which frees the driver
	// and records the ride in both parties' histories.
	RideDriverPassengerUoW interface {
		TxManager
		RideRepoFactory
		DriverRepoFactory
		PassengerRepoFactory
	}

	// RideDriverPassengerUoWFactory creates new ride/driver/passenger unit of
	// work instances.
	RideDriverPassengerUoWFactory interface {
		Create() RideDriverPassengerUoW
	}

	// UoW manages transactions across all aggregates. Used by commands that
	// coordinate changes between rides, users, and reviews.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   rideRepo := uow.RideRepository()
	//   driverRepo := uow.DriverRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		RideRepoFactory
		DriverRepoFactory
		PassengerRepoFactory
		ReviewRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
