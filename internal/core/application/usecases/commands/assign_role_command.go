package commands

import (
	"errors"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/pkg/guard"
)

var ErrAssignRoleCommandIsNotConstructed = errors.New(
	"AssignRoleCommand must be created via NewAssignRoleCommand constructor",
)

// AssignRoleCommand represents an administrator changing another user's
// role. Unlike a claim, this works on users who already hold a role.
type AssignRoleCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	principal account.Principal
	role      account.Role

	guard guard.ConstructorGuard
}

// NewAssignRoleCommand creates a command to change a user's role.
func NewAssignRoleCommand(
	userID kernel.UUID,
	principal account.Principal,
	role account.Role,
) (AssignRoleCommand, error) {
	cmd := AssignRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setPrincipal(principal),
		cmd.setRole(role),
	); err != nil {
		return AssignRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRoleCommand) Validate() error {
	return c.guard.Validate(ErrAssignRoleCommandIsNotConstructed)
}

// UserID returns the identifier of the user whose role changes.
func (c AssignRoleCommand) UserID() kernel.UUID {
	return c.userID
}

// Principal returns the acting principal.
func (c AssignRoleCommand) Principal() account.Principal {
	return c.principal
}

// Role returns the role to assign.
func (c AssignRoleCommand) Role() account.Role {
	return c.role
}

func (c *AssignRoleCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *AssignRoleCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *AssignRoleCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
