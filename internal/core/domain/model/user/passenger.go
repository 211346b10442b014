package user

import (
	"errors"
	"strings"
	"time"

	"ridehail/internal/core/domain/model/kernel"
)

// ErrPassengerIsNotConstructed is returned when using an improperly
// initialized Passenger.
var ErrPassengerIsNotConstructed = errors.New("Passenger must be created via NewPassenger constructor")

// Passenger represents a user who requests rides. It combines the shared
// User identity with passenger-specific state: an optional rating, a
// preferred payment method, and the ride history.
//
// Unlike the driver's completed ride list, the ride history is idempotent:
// adding a ride that is already present is silently ignored.
type Passenger struct {
	User

	// rating aggregates driver reviews, nil until the first review
	rating *kernel.Rating
	// preferredPaymentMethod is free-form, empty when not chosen
	preferredPaymentMethod string
	// rideHistoryIDs lists requested rides in insertion order
	rideHistoryIDs []kernel.UUID
}

// NewPassenger creates a new Passenger. The preferred payment method is
// optional and may be empty.
func NewPassenger(
	id kernel.UUID,
	fullName string,
	email string,
	phoneNumber string,
	preferredPaymentMethod string,
	now time.Time,
) (*Passenger, error) {
	base, err := newUser(id, fullName, email, phoneNumber, RolePassenger, now)
	if err != nil {
		return nil, err
	}

	return &Passenger{
		User:                   base,
		preferredPaymentMethod: strings.TrimSpace(preferredPaymentMethod),
	}, nil
}

// RestorePassenger reconstructs a Passenger aggregate from persistent storage.
func RestorePassenger(
	id kernel.UUID,
	fullName string,
	email string,
	phoneNumber string,
	preferredPaymentMethod string,
	rating *kernel.Rating,
	rideHistoryIDs []kernel.UUID,
	createdAt time.Time,
	lastLoginAt *time.Time,
) (*Passenger, error) {
	base, err := restoreUser(id, fullName, email, phoneNumber, RolePassenger, createdAt, lastLoginAt)
	if err != nil {
		return nil, err
	}

	passenger := &Passenger{
		User:                   base,
		preferredPaymentMethod: strings.TrimSpace(preferredPaymentMethod),
	}

	if rating != nil {
		if err := rating.Validate(); err != nil {
			return nil, err
		}
		r := *rating
		passenger.rating = &r
	}

	for _, rideID := range rideHistoryIDs {
		if err := passenger.AddRideToHistory(rideID); err != nil {
			return nil, err
		}
	}

	return passenger, nil
}

// Validate checks if the Passenger was properly constructed via NewPassenger.
func (p *Passenger) Validate() error {
	if p == nil {
		return ErrPassengerIsNotConstructed
	}
	return p.guard.Validate(ErrPassengerIsNotConstructed)
}

// IsEqual compares two passengers by their unique identifiers.
func (p *Passenger) IsEqual(other *Passenger) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// Rating returns the passenger's aggregated rating, or nil before any review.
func (p *Passenger) Rating() *kernel.Rating {
	return p.rating
}

// PreferredPaymentMethod returns the chosen payment method, or empty.
func (p *Passenger) PreferredPaymentMethod() string {
	return p.preferredPaymentMethod
}

// RideHistoryIDs returns the passenger's rides in insertion order.
// The returned slice is a copy to prevent external modification.
func (p *Passenger) RideHistoryIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(p.rideHistoryIDs))
	copy(out, p.rideHistoryIDs)
	return out
}

// SetPreferredPaymentMethod replaces the passenger's payment preference.
// An empty value clears it.
func (p *Passenger) SetPreferredPaymentMethod(method string) {
	p.preferredPaymentMethod = strings.TrimSpace(method)
}

// AddRideToHistory records a ride in the passenger's history. Adding a ride
// that is already present is silently ignored; the ride ID must be valid.
func (p *Passenger) AddRideToHistory(rideID kernel.UUID) error {
	if err := rideID.Validate(); err != nil {
		return err
	}

	for _, existing := range p.rideHistoryIDs {
		if existing.IsEqual(rideID) {
			return nil
		}
	}

	p.rideHistoryIDs = append(p.rideHistoryIDs, rideID)
	return nil
}

// UpdateRating replaces the passenger's aggregated rating. The caller folds
// the new review in via Rating.UpdateWith beforehand.
func (p *Passenger) UpdateRating(rating kernel.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	p.rating = &rating
	return nil
}
