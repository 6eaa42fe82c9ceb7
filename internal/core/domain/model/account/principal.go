package account

import (
	"tawsil/internal/pkg/errs"
)

// Principal is the authenticated identity attached to a request: the email
// resolved by the external identity provider plus the role stored for it.
// It is resolved once per request and threaded explicitly into every
// operation; nothing reads identity from ambient state.
type Principal struct {
	email string
	role  Role
}

// ErrPrincipalIsNotConstructed indicates a zero-value Principal.
var ErrPrincipalIsNotConstructed = errs.NewValueIsRequiredError(
	"Principal must be created via NewPrincipal")

// NewPrincipal creates a principal for the given email and role.
// The email must be non-empty; the role may be RoleNone for users who have
// not claimed a role yet.
func NewPrincipal(email string, role Role) (Principal, error) {
	if email == "" {
		return Principal{}, errs.NewValueIsRequiredError("email")
	}
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}
	return Principal{email: email, role: role}, nil
}

// Email returns the principal's email address.
func (p Principal) Email() string {
	return p.email
}

// Role returns the principal's role.
func (p Principal) Role() Role {
	return p.role
}

// Validate returns ErrPrincipalIsNotConstructed for the zero value.
func (p Principal) Validate() error {
	if p.email == "" {
		return ErrPrincipalIsNotConstructed
	}
	return nil
}

// HasAnyRole reports whether the principal's role is in the allowed set.
// An empty allowed set matches nothing.
func (p Principal) HasAnyRole(allowed ...Role) bool {
	return p.role.In(allowed...)
}
