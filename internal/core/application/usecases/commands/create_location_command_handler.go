package commands

import (
	"context"
	"time"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/location"
	"tawsil/internal/pkg/errs"
)

// CreateLocationCommandHandler handles creation of destination templates.
// Location management is an administrator operation; every role may read
// the list when pre-filling orders.
type CreateLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewCreateLocationCommandHandler creates a handler for location creation.
func NewCreateLocationCommandHandler(uowFactory LocationUoWFactory) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location creation command.
func (h CreateLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Principal().Role() != account.RoleAdmin {
		return errs.NewForbiddenError("only an admin may manage locations")
	}

	aggregate, err := location.NewLocation(cmd.LocationID(), cmd.Name(), cmd.MapLink(), time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LocationRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
