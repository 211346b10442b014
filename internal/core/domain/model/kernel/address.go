package kernel

import (
	"errors"
	"fmt"
	"strings"

	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a street address bound to a geographic location.
// Address is an immutable value object; street and city are trimmed on
// construction and must be non-empty, the postal code is optional.
//
// Example:
//
//	loc, _ := kernel.NewLocation(41.6938, 44.8015)
//	addr, err := kernel.NewAddress("12 Rustaveli Ave", "Tbilisi", "0108", loc)
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	postalCode string
	location   Location
	guard      guard.ConstructorGuard
}

// NewAddress creates a new Address. Street and city must be non-empty after
// trimming, postalCode may be empty, and location must be a constructed Location.
func NewAddress(street string, city string, postalCode string, location Location) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setCity(city),
		addr.setPostalCode(postalCode),
		addr.setLocation(location),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks if the Address was properly constructed via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the trimmed street line.
func (a Address) Street() string {
	return a.street
}

// City returns the trimmed city name.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code, which may be empty.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Location returns the geographic location of the address.
func (a Address) Location() Location {
	return a.location
}

// String returns "street, city (location)". Implements fmt.Stringer.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s (%s)", a.street, a.city, a.location)
}

// IsEqual compares two addresses by street, city, and location.
// The postal code does not participate in equality.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	sameLocation, err := a.location.IsEqual(other.location)
	if err != nil {
		return false, err
	}

	return a.street == other.street && a.city == other.city && sameLocation, nil
}

func (a *Address) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}

	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	a.city = city
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	a.postalCode = strings.TrimSpace(postalCode)
	return nil
}

func (a *Address) setLocation(location Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	a.location = location
	return nil
}
