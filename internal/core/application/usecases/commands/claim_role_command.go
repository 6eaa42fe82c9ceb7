package commands

import (
	"errors"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/pkg/errs"
	"tawsil/internal/pkg/guard"
)

var ErrClaimRoleCommandIsNotConstructed = errors.New(
	"ClaimRoleCommand must be created via NewClaimRoleCommand constructor",
)

// ClaimRoleCommand represents a signed-in identity's one-shot role
// self-assignment. The identity fields come from the authentication
// provider; the role is the caller's choice of manager or murasel.
type ClaimRoleCommand struct { //nolint:recvcheck //using for validation
	email string
	name  string
	image string
	role  account.Role

	guard guard.ConstructorGuard
}

// NewClaimRoleCommand creates a command to self-assign a role.
func NewClaimRoleCommand(email, name, image string, role account.Role) (ClaimRoleCommand, error) {
	cmd := ClaimRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setRole(role),
	); err != nil {
		return ClaimRoleCommand{}, err
	}

	cmd.name = name
	cmd.image = image

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimRoleCommand) Validate() error {
	return c.guard.Validate(ErrClaimRoleCommandIsNotConstructed)
}

// Email returns the identity's email address.
func (c ClaimRoleCommand) Email() string {
	return c.email
}

// Name returns the identity's display name.
func (c ClaimRoleCommand) Name() string {
	return c.name
}

// Image returns the identity's avatar URL.
func (c ClaimRoleCommand) Image() string {
	return c.image
}

// Role returns the role being claimed.
func (c ClaimRoleCommand) Role() account.Role {
	return c.role
}

func (c *ClaimRoleCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *ClaimRoleCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
