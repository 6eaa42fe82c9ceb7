package commands

import (
	"context"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/pkg/errs"
)

// DeleteLocationCommandHandler handles removal of destination templates.
type DeleteLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewDeleteLocationCommandHandler creates a handler for location deletion.
func NewDeleteLocationCommandHandler(uowFactory LocationUoWFactory) DeleteLocationCommandHandler {
	return DeleteLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location deletion command.
func (h DeleteLocationCommandHandler) Handle(ctx context.Context, cmd DeleteLocationCommand) error {
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

	// existence check keeps delete idempotent at the HTTP layer honest:
	// deleting a missing template is a 404, not a silent no-op
	aggregate, err := locationRepo.Get(ctx, cmd.LocationID())
	if err != nil {
		return err
	}

	if err = locationRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
