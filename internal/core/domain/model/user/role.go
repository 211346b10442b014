package user

import (
	"ridehail/internal/pkg/errs"
)

// Role identifies which side of the marketplace a user belongs to.
// The role is fixed at creation and determines which specialized
// aggregate (Driver or Passenger) wraps the shared identity.
type Role int

const (
	// RoleUnknown is the invalid zero value.
	RoleUnknown Role = iota
	// RoleDriver marks a user who accepts and performs rides.
	RoleDriver
	// RolePassenger marks a user who requests rides.
	RolePassenger
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "unknown",
		RoleDriver:    "driver",
		RolePassenger: "passenger",
	}
}

func getValidRoleStrings() map[string]Role {
	return map[string]Role{
		"driver":    RoleDriver,
		"passenger": RolePassenger,
	}
}

// RoleFromString parses a role from its string form.
// Returns an error for unknown values.
func RoleFromString(value string) (Role, error) {
	role, ok := getValidRoleStrings()[value]
	if !ok {
		return RoleUnknown, errs.NewValueIsInvalidError("role")
	}

	return role, nil
}

// Validate checks the role is one of the known values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidError("role")
	}

	return nil
}

// String returns the string form of the role. Implements fmt.Stringer.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}

	return "unknown"
}
