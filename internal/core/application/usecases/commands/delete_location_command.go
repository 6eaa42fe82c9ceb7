package commands

import (
	"errors"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/pkg/guard"
)

var ErrDeleteLocationCommandIsNotConstructed = errors.New(
	"DeleteLocationCommand must be created via NewDeleteLocationCommand constructor",
)

// DeleteLocationCommand represents a request to remove a destination
// template. Existing orders keep the text they were created with.
type DeleteLocationCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.UUID
	principal  account.Principal

	guard guard.ConstructorGuard
}

// NewDeleteLocationCommand creates a command to delete a location template.
func NewDeleteLocationCommand(locationID kernel.UUID, principal account.Principal) (DeleteLocationCommand, error) {
	cmd := DeleteLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLocationID(locationID),
		cmd.setPrincipal(principal),
	); err != nil {
		return DeleteLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteLocationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLocationCommandIsNotConstructed)
}

// LocationID returns the identifier of the location to delete.
func (c DeleteLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Principal returns the acting principal.
func (c DeleteLocationCommand) Principal() account.Principal {
	return c.principal
}

func (c *DeleteLocationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *DeleteLocationCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
