package kernel

import (
	"errors"
	"fmt"
	"math"

	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

const (
	// MinLatitude is the minimum valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the maximum valid latitude in degrees.
	MaxLatitude = 90.0
	// MinLongitude is the minimum valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the maximum valid longitude in degrees.
	MaxLongitude = 180.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0

	// coordinateTolerance is the equality tolerance for coordinate comparison.
	// Two locations closer than this on both axes are considered equal.
	coordinateTolerance = 0.0001
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location represents a geographic point with validated latitude and longitude.
// Location is an immutable value object; the zero value is invalid and fails
// validation; use NewLocation to create instances.
//
// Example:
//
//	loc, err := kernel.NewLocation(41.6938, 44.8015)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc) // Output: Location(41.693800,44.801500)
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a new Location with the specified coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180] degrees.
// Returns an out-of-range error if either coordinate is outside its bounds.
func NewLocation(latitude float64, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed via NewLocation.
// The zero value of Location fails this validation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// String returns a human-readable representation in the format
// "Location(latitude,longitude)". Implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("Location(%f,%f)", l.latitude, l.longitude)
}

// IsEqual compares two locations for equality within a tolerance of ±0.0001
// degrees on each axis. The tolerance matches the persistence round-trip
// precision of coordinates; exact float comparison is deliberately avoided.
// Both locations must be properly constructed for the comparison to succeed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return math.Abs(l.latitude-other.latitude) < coordinateTolerance &&
		math.Abs(l.longitude-other.longitude) < coordinateTolerance, nil
}

// DistanceTo calculates the great-circle distance in kilometers between two
// locations using the haversine formula with a mean Earth radius of 6371 km.
// The calculation is deterministic and has no side effects.
// Both locations must be properly constructed for the calculation to succeed.
//
// Example:
//
//	pickup, _ := kernel.NewLocation(41.6938, 44.8015)
//	destination, _ := kernel.NewLocation(41.7167, 44.7833)
//	km, _ := pickup.DistanceTo(destination) // ~2.9 km
func (l Location) DistanceTo(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := degreesToRadians(other.latitude - l.latitude)
	dLon := degreesToRadians(other.longitude - l.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(l.latitude))*math.Cos(degreesToRadians(other.latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c, nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, to enable self-encapsulated validation during object construction.
func (l *Location) setLatitude(latitude float64) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	l.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
func (l *Location) setLongitude(longitude float64) error {
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	l.longitude = longitude
	return nil
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
