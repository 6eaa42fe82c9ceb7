package account

import (
	"fmt"

	"tawsil/internal/pkg/errs"
)

// Role is the closed set of access levels. It replaces stringly-typed role
// comparisons with exhaustive matching in the authorization gate and the
// order state machine.
//
// RoleNone is a real state, not an error: freshly registered users carry it
// until they claim a role or an administrator assigns one.
type Role int

const (
	// RoleNone marks a user who has not been granted any role yet.
	RoleNone Role = iota

	// RoleAdmin grants unrestricted access to every order and user.
	RoleAdmin

	// RoleManager creates and owns orders (the requester role).
	RoleManager

	// RoleMurasel accepts and fulfills orders (the courier role).
	RoleMurasel
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleNone:    "",
		RoleAdmin:   "admin",
		RoleManager: "manager",
		RoleMurasel: "murasel",
	}
}

// RoleFromString parses a role name. The empty string maps to RoleNone.
// Returns an error for any other unknown value.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleNone, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the wire name of the role; empty for RoleNone.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return ""
}

// Validate checks the role is one of the defined values (RoleNone included).
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsAssigned reports whether the role is a working role rather than RoleNone.
func (r Role) IsAssigned() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleMurasel
}

// IsClaimable reports whether a roleless user may self-assign this role.
// Only manager and murasel can be claimed; admin is granted, never claimed.
func (r Role) IsClaimable() bool {
	return r == RoleManager || r == RoleMurasel
}

// In reports whether the role is a member of the allowed set.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
