// Package userrepo provides data transfer objects and mapping functions for
// driver and passenger persistence. Both aggregates share the users vocabulary
// but live in separate tables because their attributes and association tables
// differ.
package userrepo

import (
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// The email carries a unique index so duplicate registrations fail at the
// database level as well as in the command handlers.
type DriverDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName           string    `gorm:"type:varchar(255);not null"`
	Email              string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PhoneNumber        string    `gorm:"type:varchar(32);not null"`
	LicenseNumber      string    `gorm:"type:varchar(64);not null"`
	VehicleModel       string    `gorm:"type:varchar(255);not null"`
	VehiclePlateNumber string    `gorm:"type:varchar(32);not null"`
	IsAvailable        bool      `gorm:"not null;index"`
	RatingValue        *float64
	RatingTotalReviews *int
	CreatedAt          time.Time
	LastLoginAt        *time.Time
	CompletedRides     []DriverCompletedRideDTO `gorm:"foreignKey:DriverID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// DriverCompletedRideDTO links a driver to a ride they completed.
// Position preserves completion order when the list is reloaded.
type DriverCompletedRideDTO struct {
	DriverID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RideID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"not null"`
}

// TableName specifies the database table name for completed ride links.
func (DriverCompletedRideDTO) TableName() string {
	return "driver_completed_rides"
}

// PassengerDTO represents the database structure for persisting passenger aggregates.
type PassengerDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName               string    `gorm:"type:varchar(255);not null"`
	Email                  string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PhoneNumber            string    `gorm:"type:varchar(32);not null"`
	PreferredPaymentMethod string    `gorm:"type:varchar(64)"`
	RatingValue            *float64
	RatingTotalReviews     *int
	CreatedAt              time.Time
	LastLoginAt            *time.Time
	RideHistory            []PassengerRideDTO `gorm:"foreignKey:PassengerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for passenger entities.
func (PassengerDTO) TableName() string {
	return "passengers"
}

// PassengerRideDTO links a passenger to a ride they requested.
// Position preserves request order when the history is reloaded.
type PassengerRideDTO struct {
	PassengerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RideID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"not null"`
}

// TableName specifies the database table name for passenger ride history links.
func (PassengerRideDTO) TableName() string {
	return "passenger_ride_history"
}

// driverFromDomain converts a driver domain aggregate to its database representation.
func driverFromDomain(driver *user.Driver) DriverDTO {
	driverID := driver.ID().Bytes()

	completedRides := make([]DriverCompletedRideDTO, 0, len(driver.CompletedRideIDs()))
	for i, rideID := range driver.CompletedRideIDs() {
		completedRides = append(completedRides, DriverCompletedRideDTO{
			DriverID: driverID,
			RideID:   rideID.Bytes(),
			Position: i,
		})
	}

	dto := DriverDTO{
		ID:                 driverID,
		FullName:           driver.FullName(),
		Email:              driver.Email(),
		PhoneNumber:        driver.PhoneNumber(),
		LicenseNumber:      driver.LicenseNumber(),
		VehicleModel:       driver.VehicleModel(),
		VehiclePlateNumber: driver.VehiclePlateNumber(),
		IsAvailable:        driver.IsAvailable(),
		CreatedAt:          driver.CreatedAt(),
		LastLoginAt:        driver.LastLoginAt(),
		CompletedRides:     completedRides,
	}

	if rating := driver.Rating(); rating != nil {
		value := rating.Value()
		total := rating.TotalReviews()
		dto.RatingValue = &value
		dto.RatingTotalReviews = &total
	}

	return dto
}

// driverToDomain converts a database DTO to a driver domain aggregate.
func driverToDomain(dto DriverDTO) (*user.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	rating, err := ratingToDomain(dto.RatingValue, dto.RatingTotalReviews)
	if err != nil {
		return nil, err
	}

	completedRideIDs := make([]kernel.UUID, 0, len(dto.CompletedRides))
	for _, link := range dto.CompletedRides {
		rideID, rideErr := kernel.UUIDFromBytes(link.RideID[:])
		if rideErr != nil {
			return nil, rideErr
		}
		completedRideIDs = append(completedRideIDs, rideID)
	}

	return user.RestoreDriver(
		id,
		dto.FullName,
		dto.Email,
		dto.PhoneNumber,
		dto.LicenseNumber,
		dto.VehicleModel,
		dto.VehiclePlateNumber,
		dto.IsAvailable,
		rating,
		completedRideIDs,
		dto.CreatedAt,
		dto.LastLoginAt,
	)
}

// passengerFromDomain converts a passenger domain aggregate to its database representation.
func passengerFromDomain(passenger *user.Passenger) PassengerDTO {
	passengerID := passenger.ID().Bytes()

	rideHistory := make([]PassengerRideDTO, 0, len(passenger.RideHistoryIDs()))
	for i, rideID := range passenger.RideHistoryIDs() {
		rideHistory = append(rideHistory, PassengerRideDTO{
			PassengerID: passengerID,
			RideID:      rideID.Bytes(),
			Position:    i,
		})
	}

	dto := PassengerDTO{
		ID:                     passengerID,
		FullName:               passenger.FullName(),
		Email:                  passenger.Email(),
		PhoneNumber:            passenger.PhoneNumber(),
		PreferredPaymentMethod: passenger.PreferredPaymentMethod(),
		CreatedAt:              passenger.CreatedAt(),
		LastLoginAt:            passenger.LastLoginAt(),
		RideHistory:            rideHistory,
	}

	if rating := passenger.Rating(); rating != nil {
		value := rating.Value()
		total := rating.TotalReviews()
		dto.RatingValue = &value
		dto.RatingTotalReviews = &total
	}

	return dto
}

// passengerToDomain converts a database DTO to a passenger domain aggregate.
func passengerToDomain(dto PassengerDTO) (*user.Passenger, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	rating, err := ratingToDomain(dto.RatingValue, dto.RatingTotalReviews)
	if err != nil {
		return nil, err
	}

	rideHistoryIDs := make([]kernel.UUID, 0, len(dto.RideHistory))
	for _, link := range dto.RideHistory {
		rideID, rideErr := kernel.UUIDFromBytes(link.RideID[:])
		if rideErr != nil {
			return nil, rideErr
		}
		rideHistoryIDs = append(rideHistoryIDs, rideID)
	}

	return user.RestorePassenger(
		id,
		dto.FullName,
		dto.Email,
		dto.PhoneNumber,
		dto.PreferredPaymentMethod,
		rating,
		rideHistoryIDs,
		dto.CreatedAt,
		dto.LastLoginAt,
	)
}

// ratingToDomain rebuilds an optional rating from its persisted columns.
// Both columns are set together, so a missing value means no rating yet.
func ratingToDomain(value *float64, totalReviews *int) (*kernel.Rating, error) {
	if value == nil || totalReviews == nil {
		return nil, nil
	}

	rating, err := kernel.NewRating(*value, *totalReviews)
	if err != nil {
		return nil, err
	}

	return &rating, nil
}
