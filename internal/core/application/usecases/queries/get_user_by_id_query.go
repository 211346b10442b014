package queries

import (
	"errors"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/guard"
)

var (
	ErrGetUserByIDQueryIsNotConstructed = errors.New(
		"GetUserByIDQuery must be created via NewGetUserByIDQuery constructor",
	)
)

// GetUserByIDQuery retrieves a single user profile, driver or passenger,
// by identifier.
//
// Example:
//
//	query, err := NewGetUserByIDQuery(userID)
//	if err != nil {
//	    return err
//	}
//
//	profile, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get user: %w", err)
//	}
//
//	fmt.Printf("%s (%s)\n", profile.FullName, profile.Role)
type GetUserByIDQuery struct {
	userID kernel.UUID
	guard  guard.ConstructorGuard
}

// NewGetUserByIDQuery creates a query to retrieve a user profile.
func NewGetUserByIDQuery(userID kernel.UUID) (GetUserByIDQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserByIDQuery{}, err
	}

	return GetUserByIDQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// UserID returns the identifier of the requested user.
func (q GetUserByIDQuery) UserID() kernel.UUID {
	return q.userID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserByIDQueryIsNotConstructed if validation fails.
func (q GetUserByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByIDQueryIsNotConstructed)
}

// GetUserByIDQueryResponse represents a user profile in the read model.
// Role is "driver" or "passenger"; the driver-only and passenger-only
// fields are nil for the other role. The rating fields are nil for users
// who have not been reviewed yet.
type GetUserByIDQueryResponse struct {
	ID                 kernel.UUID
	Role               string
	FullName           string
	Email              string
	PhoneNumber        string
	RatingValue        *float64
	RatingTotalReviews *int
	CreatedAt          time.Time
	LastLoginAt        *time.Time

	// Driver-only fields.
	LicenseNumber      *string
	VehicleModel       *string
	VehiclePlateNumber *string
	IsAvailable        *bool

	// Passenger-only fields.
	PreferredPaymentMethod *string
}
