package account

import (
	"errors"

	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrRoleAlreadyAssigned is returned when a user who already holds a
	// role tries to claim one. Role changes past the first claim are an
	// administrator-only operation.
	ErrRoleAlreadyAssigned = errors.New("user already has a role assigned")

	// ErrRoleIsNotClaimable is returned when a self-assignment names a role
	// outside {manager, murasel}.
	ErrRoleIsNotClaimable = errors.New("role cannot be self-assigned")
)

// User is the aggregate behind authentication and role management.
// Identity comes from the external provider (email is unique); the stored
// role is what the authorization gate consults.
//
// Invariants:
//   - Email is non-empty and immutable.
//   - A roleless user may claim manager or murasel exactly once.
//   - Any further role change goes through AssignRole (admin operation).
type User struct {
	id    kernel.UUID
	email string
	name  string
	image string
	role  Role

	isConstructed bool
}

// NewUser creates a roleless user record for a first-seen identity.
func NewUser(id kernel.UUID, email, name, image string) (*User, error) {
	u := &User{
		name:          name,
		image:         image,
		role:          RoleNone,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence without re-running
// creation-time rules.
func RestoreUser(id kernel.UUID, email, name, image string, role Role) (*User, error) {
	u := &User{
		name:          name,
		image:         image,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was created via a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's unique email address.
func (u *User) Email() string {
	return u.email
}

// Name returns the display name supplied by the identity provider.
func (u *User) Name() string {
	return u.name
}

// Image returns the avatar URL supplied by the identity provider.
func (u *User) Image() string {
	return u.image
}

// Role returns the user's current role.
func (u *User) Role() Role {
	return u.role
}

// Principal derives the authenticated principal for this user.
func (u *User) Principal() (Principal, error) {
	return NewPrincipal(u.email, u.role)
}

// ClaimRole performs the one-shot self-assignment. It succeeds only while
// the user is roleless and the requested role is manager or murasel.
func (u *User) ClaimRole(role Role) error {
	if u.role.IsAssigned() {
		return ErrRoleAlreadyAssigned
	}
	if !role.IsClaimable() {
		return ErrRoleIsNotClaimable
	}

	u.role = role
	return nil
}

// AssignRole sets the role on behalf of an administrator. Unlike ClaimRole
// it may overwrite an existing role, but never clears one.
func (u *User) AssignRole(role Role) error {
	if !role.IsAssigned() {
		return errs.NewValueIsInvalidError("role")
	}

	u.role = role
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
