package commands

import (
	"errors"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/pkg/errs"
	"tawsil/internal/pkg/guard"
)

var ErrCreateLocationCommandIsNotConstructed = errors.New(
	"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
)

// CreateLocationCommand represents a request to add a destination template.
type CreateLocationCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.UUID
	principal  account.Principal
	name       string
	mapLink    string

	guard guard.ConstructorGuard
}

// NewCreateLocationCommand creates a command to add a location template.
func NewCreateLocationCommand(
	locationID kernel.UUID,
	principal account.Principal,
	name, mapLink string,
) (CreateLocationCommand, error) {
	cmd := CreateLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLocationID(locationID),
		cmd.setPrincipal(principal),
		cmd.setName(name),
		cmd.setMapLink(mapLink),
	); err != nil {
		return CreateLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

// LocationID returns the identifier for the new location.
func (c CreateLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Principal returns the acting principal.
func (c CreateLocationCommand) Principal() account.Principal {
	return c.principal
}

// Name returns the display name.
func (c CreateLocationCommand) Name() string {
	return c.name
}

// MapLink returns the map URL.
func (c CreateLocationCommand) MapLink() string {
	return c.mapLink
}

func (c *CreateLocationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *CreateLocationCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *CreateLocationCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateLocationCommand) setMapLink(mapLink string) error {
	if mapLink == "" {
		return errs.NewValueIsRequiredError("mapLink")
	}

	c.mapLink = mapLink
	return nil
}
