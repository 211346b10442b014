// Package riderepo provides data transfer objects and mapping functions for ride order persistence.
// This package implements the repository pattern for the ride order domain aggregate, handling
// the conversion between domain entities and database representations.
package riderepo

import (
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/ride"

	"github.com/google/uuid"
)

// RideDTO represents the database structure for persisting ride order aggregates.
// Maps ride domain entities to relational database tables with proper indexing
// for efficient querying by status, passenger, and driver assignment.
// The version column backs optimistic concurrency control for ride updates.
type RideDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PassengerID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID            *uuid.UUID `gorm:"type:uuid;index"`
	Pickup              AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Destination         AddressDTO `gorm:"embedded;embeddedPrefix:destination_"`
	EstimatedFareAmount int64      `gorm:"not null"`
	FinalFareAmount     *int64
	FareCurrency        string `gorm:"type:varchar(3);not null"`
	Status              int    `gorm:"not null;index"`
	CreatedAt           time.Time
	AcceptedAt          *time.Time
	StartedAt           *time.Time
	CompletedAt         *time.Time
	CancelledAt         *time.Time
	RejectionReason     string `gorm:"type:text"`
	CancellationReason  string `gorm:"type:text"`
	CancelledBy         *uuid.UUID `gorm:"type:uuid"`
	Version             int64      `gorm:"not null"`
}

// TableName specifies the database table name for ride order entities.
// Overrides GORM's default naming convention to use "rides".
func (RideDTO) TableName() string {
	return "rides"
}

// AddressDTO represents an embedded address within the rides table.
// Stores pickup and destination addresses with their coordinates.
type AddressDTO struct {
	Street     string  `gorm:"type:varchar(255);not null"`
	City       string  `gorm:"type:varchar(255);not null"`
	PostalCode string  `gorm:"type:varchar(32)"`
	Latitude   float64 `gorm:"type:double precision;not null"`
	Longitude  float64 `gorm:"type:double precision;not null"`
}

// fromDomain converts a ride order domain aggregate to its database representation.
// Maps all ride attributes including optional driver assignment, final fare,
// and lifecycle timestamps.
func fromDomain(order *ride.RideOrder) RideDTO {
	var driverID *uuid.UUID
	if id := order.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var finalFareAmount *int64
	if fare := order.FinalFare(); fare != nil {
		amount := fare.AmountInMinorUnits()
		finalFareAmount = &amount
	}

	var cancelledBy *uuid.UUID
	if id := order.CancelledBy(); id != nil {
		raw := id.Bytes()
		cancelledBy = &raw
	}

	return RideDTO{
		ID:                  order.ID().Bytes(),
		PassengerID:         order.PassengerID().Bytes(),
		DriverID:            driverID,
		Pickup:              addressFromDomain(order.Pickup()),
		Destination:         addressFromDomain(order.Destination()),
		EstimatedFareAmount: order.EstimatedFare().AmountInMinorUnits(),
		FinalFareAmount:     finalFareAmount,
		FareCurrency:        order.EstimatedFare().Currency(),
		Status:              int(order.Status()),
		CreatedAt:           order.CreatedAt(),
		AcceptedAt:          order.AcceptedAt(),
		StartedAt:           order.StartedAt(),
		CompletedAt:         order.CompletedAt(),
		CancelledAt:         order.CancelledAt(),
		RejectionReason:     order.RejectionReason(),
		CancellationReason:  order.CancellationReason(),
		CancelledBy:         cancelledBy,
		Version:             order.Version(),
	}
}

// toDomain converts a database DTO to a ride order domain aggregate.
// Reconstructs the complete aggregate including status, timestamps, and
// concurrency version using RestoreRideOrder.
func toDomain(dto RideDTO) (*ride.RideOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	passengerID, err := kernel.UUIDFromBytes(dto.PassengerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	pickup, err := addressToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}

	destination, err := addressToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}

	estimatedFare, err := kernel.MoneyFromMinorUnits(dto.EstimatedFareAmount, dto.FareCurrency)
	if err != nil {
		return nil, err
	}

	var finalFare *kernel.Money
	if dto.FinalFareAmount != nil {
		fare, fareErr := kernel.MoneyFromMinorUnits(*dto.FinalFareAmount, dto.FareCurrency)
		if fareErr != nil {
			return nil, fareErr
		}
		finalFare = &fare
	}

	var cancelledBy *kernel.UUID
	if dto.CancelledBy != nil {
		cID, cancelErr := kernel.UUIDFromBytes((*dto.CancelledBy)[:])
		if cancelErr != nil {
			return nil, cancelErr
		}
		cancelledBy = &cID
	}

	return ride.RestoreRideOrder(
		id,
		passengerID,
		driverID,
		pickup,
		destination,
		estimatedFare,
		finalFare,
		ride.Status(dto.Status),
		dto.CreatedAt,
		dto.AcceptedAt,
		dto.StartedAt,
		dto.CompletedAt,
		dto.CancelledAt,
		dto.RejectionReason,
		dto.CancellationReason,
		cancelledBy,
		dto.Version,
	)
}

// addressFromDomain converts an address value object to its embedded database form.
func addressFromDomain(address kernel.Address) AddressDTO {
	return AddressDTO{
		Street:     address.Street(),
		City:       address.City(),
		PostalCode: address.PostalCode(),
		Latitude:   address.Location().Latitude(),
		Longitude:  address.Location().Longitude(),
	}
}

// addressToDomain converts an embedded address DTO to an address value object.
func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	location, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return kernel.Address{}, err
	}

	return kernel.NewAddress(dto.Street, dto.City, dto.PostalCode, location)
}
