package commands

import (
	"context"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/pkg/errs"
)

// EditLocationCommandHandler handles renames of destination templates.
type EditLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewEditLocationCommandHandler creates a handler for location edits.
func NewEditLocationCommandHandler(uowFactory LocationUoWFactory) EditLocationCommandHandler {
	return EditLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location edit command.
func (h EditLocationCommandHandler) Handle(ctx context.Context, cmd EditLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Principal().Role() != account.RoleAdmin {
		return errs.NewForbiddenError("only an admin may manage locations")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	locationRepo := uow.LocationRepository()

	aggregate, err := locationRepo.Get(ctx, cmd.LocationID())
	if err != nil {
		return err
	}

	if err = aggregate.Rename(cmd.Name(), cmd.MapLink()); err != nil {
		return err
	}

	if err = locationRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
