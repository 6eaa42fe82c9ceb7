package commands

import (
	"context"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/pkg/errs"
)

// DeleteOrderCommandHandler handles order removal.
// An administrator's delete drops the row; a manager's delete soft-deletes
// their own order so it disappears from every non-admin listing but stays
// recoverable.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// a soft-deleted order does not exist for anyone but an admin
	if !aggregate.VisibleTo(cmd.Principal()) {
		return errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	if cmd.Principal().Role() == account.RoleAdmin {
		if err = orderRepo.Delete(ctx, aggregate.ID()); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	if err = aggregate.MarkDeleted(cmd.Principal()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
