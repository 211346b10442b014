package commands

import (
	"errors"
	"strings"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrLicenseNumberIsRequired = errors.New("license number is required")
	ErrVehicleModelIsRequired  = errors.New("vehicle model is required")
	ErrVehiclePlateIsRequired  = errors.New("vehicle plate number is required")
)

// CreateDriverCommand represents a request to register a new driver with
// their vehicle details.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID           kernel.UUID
	fullName           string
	email              string
	phoneNumber        string
	licenseNumber      string
	vehicleModel       string
	vehiclePlateNumber string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// All fields are required.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	fullName string,
	email string,
	phoneNumber string,
	licenseNumber string,
	vehicleModel string,
	vehiclePlateNumber string,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setFullName(fullName),
		cmd.setEmail(email),
		cmd.setPhoneNumber(phoneNumber),
		cmd.setLicenseNumber(licenseNumber),
		cmd.setVehicleModel(vehicleModel),
		cmd.setVehiclePlateNumber(vehiclePlateNumber),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the new driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// FullName returns the driver's display name.
func (c CreateDriverCommand) FullName() string {
	return c.fullName
}

// Email returns the driver's email.
func (c CreateDriverCommand) Email() string {
	return c.email
}

// PhoneNumber returns the driver's contact phone number.
func (c CreateDriverCommand) PhoneNumber() string {
	return c.phoneNumber
}

// LicenseNumber returns the driver's license identifier.
func (c CreateDriverCommand) LicenseNumber() string {
	return c.licenseNumber
}

// VehicleModel returns the driver's vehicle model.
func (c CreateDriverCommand) VehicleModel() string {
	return c.vehicleModel
}

// VehiclePlateNumber returns the vehicle's registration plate.
func (c CreateDriverCommand) VehiclePlateNumber() string {
	return c.vehiclePlateNumber
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return ErrFullNameIsRequired
	}

	c.fullName = fullName
	return nil
}

func (c *CreateDriverCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreateDriverCommand) setPhoneNumber(phoneNumber string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return ErrPhoneNumberIsRequired
	}

	c.phoneNumber = phoneNumber
	return nil
}

func (c *CreateDriverCommand) setLicenseNumber(licenseNumber string) error {
	if strings.TrimSpace(licenseNumber) == "" {
		return ErrLicenseNumberIsRequired
	}

	c.licenseNumber = licenseNumber
	return nil
}

func (c *CreateDriverCommand) setVehicleModel(vehicleModel string) error {
	if strings.TrimSpace(vehicleModel) == "" {
		return ErrVehicleModelIsRequired
	}

	c.vehicleModel = vehicleModel
	return nil
}

func (c *CreateDriverCommand) setVehiclePlateNumber(plate string) error {
	if strings.TrimSpace(plate) == "" {
		return ErrVehiclePlateIsRequired
	}

	c.vehiclePlateNumber = plate
	return nil
}
