package commands

import (
	"errors"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/pkg/errs"
	"tawsil/internal/pkg/guard"
)

var ErrEditLocationCommandIsNotConstructed = errors.New(
	"EditLocationCommand must be created via NewEditLocationCommand constructor",
)

// EditLocationCommand represents a request to rename a destination template.
type EditLocationCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.UUID
	principal  account.Principal
	name       string
	mapLink    string

	guard guard.ConstructorGuard
}

// NewEditLocationCommand creates a command to edit a location template.
func NewEditLocationCommand(
	locationID kernel.UUID,
	principal account.Principal,
	name, mapLink string,
) (EditLocationCommand, error) {
	cmd := EditLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLocationID(locationID),
		cmd.setPrincipal(principal),
		cmd.setName(name),
		cmd.setMapLink(mapLink),
	); err != nil {
		return EditLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditLocationCommand) Validate() error {
	return c.guard.Validate(ErrEditLocationCommandIsNotConstructed)
}

// LocationID returns the identifier of the location to edit.
func (c EditLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Principal returns the acting principal.
func (c EditLocationCommand) Principal() account.Principal {
	return c.principal
}

// Name returns the replacement display name.
func (c EditLocationCommand) Name() string {
	return c.name
}

// MapLink returns the replacement map URL.
func (c EditLocationCommand) MapLink() string {
	return c.mapLink
}

func (c *EditLocationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *EditLocationCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *EditLocationCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *EditLocationCommand) setMapLink(mapLink string) error {
	if mapLink == "" {
		return errs.NewValueIsRequiredError("mapLink")
	}

	c.mapLink = mapLink
	return nil
}
