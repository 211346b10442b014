package user

import (
	"errors"
	"strings"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
)

// Domain errors for driver operations.
var (
	// ErrLicenseNumberIsRequired is returned when creating a driver without a license number.
	ErrLicenseNumberIsRequired = errs.NewValueIsRequiredError("license number")
	// ErrVehicleModelIsRequired is returned when creating a driver without a vehicle model.
	ErrVehicleModelIsRequired = errs.NewValueIsRequiredError("vehicle model")
	// ErrVehiclePlateIsRequired is returned when creating a driver without a plate number.
	ErrVehiclePlateIsRequired = errs.NewValueIsRequiredError("vehicle plate number")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrRideAlreadyCompleted is returned when recording a completed ride twice.
	ErrRideAlreadyCompleted = errors.New("ride is already recorded as completed")
)

// Driver represents a user who accepts and performs rides.
// It is an aggregate root combining the shared User identity with
// driver-specific state.
//
// Key responsibilities:
//   - Tracking availability for ride assignment
//   - Recording completed rides in insertion order without duplicates
//   - Holding the aggregated review rating
//
// Business rules:
//   - A new driver starts available with no rating and no completed rides
//   - The vehicle plate number is stored uppercased
//   - The rating is nil until the first review arrives
//
// Example usage:
//
//	driver, err := NewDriver(kernel.NewUUID(), "Giorgi Beridze",
//	    "giorgi@example.com", "+995555123456",
//	    "DL-44821", "Toyota Prius", "ab-123-cd", time.Now())
//	if err != nil {
//	    // Handle construction error
//	}
//	// driver.IsAvailable() == true, driver.VehiclePlateNumber() == "AB-123-CD"
type Driver struct {
	User

	// licenseNumber is the driver's license identifier
	licenseNumber string
	// vehicleModel describes the driver's car
	vehicleModel string
	// vehiclePlateNumber is the car's registration plate, uppercased
	vehiclePlateNumber string
	// isAvailable reports whether the driver can be assigned a ride
	isAvailable bool
	// rating aggregates passenger reviews, nil until the first review
	rating *kernel.Rating
	// completedRideIDs lists finished rides in completion order
	completedRideIDs []kernel.UUID
}

// NewDriver creates a new Driver with the specified identity and vehicle
// details. This is the only way to create a valid Driver instance.
//
// The new driver is available, has no rating, and has an empty completed
// ride list. The plate number is uppercased and the email lowercased.
//
// Returns a validation error naming the offending field if any parameter
// is invalid.
func NewDriver(
	id kernel.UUID,
	fullName string,
	email string,
	phoneNumber string,
	licenseNumber string,
	vehicleModel string,
	vehiclePlateNumber string,
	now time.Time,
) (*Driver, error) {
	base, err := newUser(id, fullName, email, phoneNumber, RoleDriver, now)
	if err != nil {
		return nil, err
	}

	driver := &Driver{
		User:        base,
		isAvailable: true,
	}

	if err := errors.Join(
		driver.setLicenseNumber(licenseNumber),
		driver.setVehicleModel(vehicleModel),
		driver.setVehiclePlateNumber(vehiclePlateNumber),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// including availability, rating, and the completed ride list. The restored
// driver behaves identically to one created through normal domain operations.
func RestoreDriver(
	id kernel.UUID,
	fullName string,
	email string,
	phoneNumber string,
	licenseNumber string,
	vehicleModel string,
	vehiclePlateNumber string,
	isAvailable bool,
	rating *kernel.Rating,
	completedRideIDs []kernel.UUID,
	createdAt time.Time,
	lastLoginAt *time.Time,
) (*Driver, error) {
	base, err := restoreUser(id, fullName, email, phoneNumber, RoleDriver, createdAt, lastLoginAt)
	if err != nil {
		return nil, err
	}

	driver := &Driver{
		User:        base,
		isAvailable: isAvailable,
	}

	if err := errors.Join(
		driver.setLicenseNumber(licenseNumber),
		driver.setVehicleModel(vehicleModel),
		driver.setVehiclePlateNumber(vehiclePlateNumber),
	); err != nil {
		return nil, err
	}

	if rating != nil {
		if err := rating.Validate(); err != nil {
			return nil, err
		}
		r := *rating
		driver.rating = &r
	}

	for _, rideID := range completedRideIDs {
		if err := driver.AddCompletedRide(rideID); err != nil {
			return nil, err
		}
	}

	return driver, nil
}

// Validate checks if the Driver was properly constructed via NewDriver.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// LicenseNumber returns the driver's license identifier.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// VehicleModel returns the driver's vehicle model.
func (d *Driver) VehicleModel() string {
	return d.vehicleModel
}

// VehiclePlateNumber returns the uppercased registration plate.
func (d *Driver) VehiclePlateNumber() string {
	return d.vehiclePlateNumber
}

// IsAvailable reports whether the driver can currently be assigned a ride.
func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

// Rating returns the driver's aggregated rating, or nil before any review.
func (d *Driver) Rating() *kernel.Rating {
	return d.rating
}

// CompletedRideIDs returns the completed rides in completion order.
// The returned slice is a copy to prevent external modification.
func (d *Driver) CompletedRideIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(d.completedRideIDs))
	copy(out, d.completedRideIDs)
	return out
}

// SetAvailability toggles whether the driver can be assigned rides.
// Always succeeds: it is used both for the driver's own willingness and
// as a side effect of ride acceptance, cancellation, and completion.
func (d *Driver) SetAvailability(available bool) {
	d.isAvailable = available
}

// AddCompletedRide records a finished ride. The ride ID must be valid and
// not already recorded; completion order is preserved.
func (d *Driver) AddCompletedRide(rideID kernel.UUID) error {
	if err := rideID.Validate(); err != nil {
		return err
	}

	for _, existing := range d.completedRideIDs {
		if existing.IsEqual(rideID) {
			return ErrRideAlreadyCompleted
		}
	}

	d.completedRideIDs = append(d.completedRideIDs, rideID)
	return nil
}

// UpdateRating replaces the driver's aggregated rating. The caller folds
// the new review in via Rating.UpdateWith beforehand; the very first review
// uses the submitted value directly.
func (d *Driver) UpdateRating(rating kernel.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	d.rating = &rating
	return nil
}

func (d *Driver) setLicenseNumber(licenseNumber string) error {
	licenseNumber = strings.TrimSpace(licenseNumber)
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}

	d.licenseNumber = licenseNumber
	return nil
}

func (d *Driver) setVehicleModel(vehicleModel string) error {
	vehicleModel = strings.TrimSpace(vehicleModel)
	if vehicleModel == "" {
		return ErrVehicleModelIsRequired
	}

	d.vehicleModel = vehicleModel
	return nil
}

func (d *Driver) setVehiclePlateNumber(plate string) error {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return ErrVehiclePlateIsRequired
	}

	d.vehiclePlateNumber = plate
	return nil
}
