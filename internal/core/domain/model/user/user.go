// Package user contains the Driver and Passenger aggregates. Both share a
// common User identity embedded by value; role-specific state and behavior
// live on the wrapping aggregate.
package user

import (
	"strings"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

// Domain errors shared by all user kinds.
var (
	// ErrFullNameIsRequired is returned when creating a user without a full name.
	ErrFullNameIsRequired = errs.NewValueIsRequiredError("full name")
	// ErrEmailIsRequired is returned when creating a user without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrEmailIsInvalid is returned when the email is not of the form local@domain.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
	// ErrPhoneNumberIsRequired is returned when creating a user without a phone number.
	ErrPhoneNumberIsRequired = errs.NewValueIsRequiredError("phone number")
)

// User holds the identity fields common to drivers and passengers.
// It is never used standalone: Driver and Passenger embed it by value
// and are constructed through their own factories, which fix the role.
//
// Emails are stored lowercased so uniqueness checks in persistence are
// case-insensitive.
type User struct {
	id          kernel.UUID
	fullName    string
	email       string
	phoneNumber string
	role        Role
	createdAt   time.Time
	lastLoginAt *time.Time
	guard       guard.ConstructorGuard
}

// newUser builds the shared identity part. Only the Driver and Passenger
// factories call it; the role comes from the factory, never the caller.
func newUser(
	id kernel.UUID,
	fullName string,
	email string,
	phoneNumber string,
	role Role,
	now time.Time,
) (User, error) {
	u := User{
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := u.setID(id); err != nil {
		return User{}, err
	}
	if err := u.setFullName(fullName); err != nil {
		return User{}, err
	}
	if err := u.setEmail(email); err != nil {
		return User{}, err
	}
	if err := u.setPhoneNumber(phoneNumber); err != nil {
		return User{}, err
	}
	if err := u.setRole(role); err != nil {
		return User{}, err
	}

	return u, nil
}

// restoreUser rebuilds the identity part from persistent storage.
func restoreUser(
	id kernel.UUID,
	fullName string,
	email string,
	phoneNumber string,
	role Role,
	createdAt time.Time,
	lastLoginAt *time.Time,
) (User, error) {
	u, err := newUser(id, fullName, email, phoneNumber, role, createdAt)
	if err != nil {
		return User{}, err
	}

	u.lastLoginAt = lastLoginAt
	return u, nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.fullName
}

// Email returns the user's email, lowercased.
func (u *User) Email() string {
	return u.email
}

// PhoneNumber returns the user's contact phone number.
func (u *User) PhoneNumber() string {
	return u.phoneNumber
}

// Role returns the user's fixed role.
func (u *User) Role() Role {
	return u.role
}

// CreatedAt returns when the user was registered.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// LastLoginAt returns the most recent login time, or nil if never logged in.
func (u *User) LastLoginAt() *time.Time {
	return u.lastLoginAt
}

// UpdateProfile replaces the user's name and phone number.
// Both values are validated; on failure nothing changes.
func (u *User) UpdateProfile(fullName string, phoneNumber string) error {
	if strings.TrimSpace(fullName) == "" {
		return ErrFullNameIsRequired
	}
	if strings.TrimSpace(phoneNumber) == "" {
		return ErrPhoneNumberIsRequired
	}

	u.fullName = strings.TrimSpace(fullName)
	u.phoneNumber = strings.TrimSpace(phoneNumber)
	return nil
}

// RecordLogin stores the time of a successful login.
func (u *User) RecordLogin(now time.Time) {
	u.lastLoginAt = &now
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	u.id = id
	return nil
}

func (u *User) setFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return ErrFullNameIsRequired
	}

	u.fullName = fullName
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrEmailIsRequired
	}

	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" || strings.Contains(domain, "@") {
		return ErrEmailIsInvalid
	}

	u.email = email
	return nil
}

func (u *User) setPhoneNumber(phoneNumber string) error {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return ErrPhoneNumberIsRequired
	}

	u.phoneNumber = phoneNumber
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	u.role = role
	return nil
}
