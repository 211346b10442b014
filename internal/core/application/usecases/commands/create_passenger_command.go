package commands

import (
	"errors"
	"strings"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/guard"
)

var (
	ErrCreatePassengerCommandIsNotConstructed = errors.New(
		"CreatePassengerCommand must be created via NewCreatePassengerCommand constructor",
	)
	ErrFullNameIsRequired    = errors.New("full name is required")
	ErrEmailIsRequired       = errors.New("email is required")
	ErrPhoneNumberIsRequired = errors.New("phone number is required")
)

// CreatePassengerCommand represents a request to register a new passenger.
//
// Example:
//
//	passengerID := kernel.NewUUID()
//	cmd, err := NewCreatePassengerCommand(passengerID, "Ana Lomidze",
//	    "ana@example.com", "+995577112233", "card")
//	if err != nil {
//	    return fmt.Errorf("invalid passenger data: %w", err)
//	}
//
//	handler := NewCreatePassengerCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register passenger: %w", err)
//	}
type CreatePassengerCommand struct { //nolint:recvcheck //using for validation
	passengerID            kernel.UUID
	fullName               string
	email                  string
	phoneNumber            string
	preferredPaymentMethod string

	guard guard.ConstructorGuard
}

// NewCreatePassengerCommand creates a command to register a new passenger.
// The payment method is optional; all other fields are required.
func NewCreatePassengerCommand(
	passengerID kernel.UUID,
	fullName string,
	email string,
	phoneNumber string,
	preferredPaymentMethod string,
) (CreatePassengerCommand, error) {
	cmd := CreatePassengerCommand{
		preferredPaymentMethod: strings.TrimSpace(preferredPaymentMethod),
		guard:                  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPassengerID(passengerID),
		cmd.setFullName(fullName),
		cmd.setEmail(email),
		cmd.setPhoneNumber(phoneNumber),
	); err != nil {
		return CreatePassengerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePassengerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePassengerCommandIsNotConstructed)
}

// PassengerID returns the unique identifier for the new passenger.
func (c CreatePassengerCommand) PassengerID() kernel.UUID {
	return c.passengerID
}

// FullName returns the passenger's display name.
func (c CreatePassengerCommand) FullName() string {
	return c.fullName
}

// Email returns the passenger's email.
func (c CreatePassengerCommand) Email() string {
	return c.email
}

// PhoneNumber returns the passenger's contact phone number.
func (c CreatePassengerCommand) PhoneNumber() string {
	return c.phoneNumber
}

// PreferredPaymentMethod returns the chosen payment method, possibly empty.
func (c CreatePassengerCommand) PreferredPaymentMethod() string {
	return c.preferredPaymentMethod
}

func (c *CreatePassengerCommand) setPassengerID(passengerID kernel.UUID) error {
	if err := passengerID.Validate(); err != nil {
		return err
	}

	c.passengerID = passengerID
	return nil
}

func (c *CreatePassengerCommand) setFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return ErrFullNameIsRequired
	}

	c.fullName = fullName
	return nil
}

func (c *CreatePassengerCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreatePassengerCommand) setPhoneNumber(phoneNumber string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return ErrPhoneNumberIsRequired
	}

	c.phoneNumber = phoneNumber
	return nil
}
